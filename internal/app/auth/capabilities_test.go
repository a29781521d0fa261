package auth

import (
	"testing"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
)

func TestCan(t *testing.T) {
	tests := []struct {
		action  Action
		student bool
		staff   bool
		admin   bool
	}{
		{action: ActionCreateAnnouncement, student: false, staff: true, admin: true},
		{action: ActionCreateComplaint, student: true, staff: false, admin: false},
		{action: ActionTransitionComplaint, student: false, staff: true, admin: true},
		{action: ActionCreateLostFound, student: true, staff: true, admin: true},
		{action: ActionResolveLostFound, student: false, staff: true, admin: true},
		{action: ActionCreatePoll, student: false, staff: true, admin: true},
		{action: ActionVote, student: true, staff: false, admin: false},
		{action: ActionCreateEvent, student: false, staff: true, admin: true},
		{action: ActionRSVP, student: true, staff: false, admin: false},
		{action: ActionCreateFeedback, student: true, staff: false, admin: false},
		{action: ActionRespondFeedback, student: false, staff: false, admin: true},
		{action: ActionManageUsers, student: false, staff: false, admin: true},
		{action: ActionJoinChallenge, student: true, staff: false, admin: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			if got := Can(tt.action, models.RoleStudent); got != tt.student {
				t.Errorf("Can(%s, student) = %v, want %v", tt.action, got, tt.student)
			}
			if got := Can(tt.action, models.RoleStaff); got != tt.staff {
				t.Errorf("Can(%s, staff) = %v, want %v", tt.action, got, tt.staff)
			}
			if got := Can(tt.action, models.RoleAdmin); got != tt.admin {
				t.Errorf("Can(%s, admin) = %v, want %v", tt.action, got, tt.admin)
			}
		})
	}
}

func TestCanUnknownActionOrRole(t *testing.T) {
	if Can(Action("fly"), models.RoleAdmin) {
		t.Error("Unknown action must not be granted")
	}
	if Can(ActionVote, models.Role("guest")) {
		t.Error("Unknown role must not be granted")
	}
}
