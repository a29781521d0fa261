// Package auth holds the role capability table. Services consult
// Can(action, role) instead of re-deriving role comparisons per handler.
package auth

import "github.com/Naveenkumar3327/Campus-link/internal/app/models"

// Action names a role-gated write operation.
type Action string

const (
	ActionCreateAnnouncement  Action = "create-announcement"
	ActionCreateComplaint     Action = "create-complaint"
	ActionTransitionComplaint Action = "transition-complaint"
	ActionCreateLostFound     Action = "create-lost-found"
	ActionResolveLostFound    Action = "resolve-lost-found"
	ActionCreatePoll          Action = "create-poll"
	ActionVote                Action = "vote"
	ActionCreateEvent         Action = "create-event"
	ActionRSVP                Action = "rsvp"
	ActionCreateFeedback      Action = "create-feedback"
	ActionRespondFeedback     Action = "respond-feedback"
	ActionManageUsers         Action = "manage-users"
	ActionJoinChallenge       Action = "join-challenge"
)

// capabilities is the static permission table. Roles absent from an
// action's list cannot perform it.
var capabilities = map[Action][]models.Role{
	ActionCreateAnnouncement:  {models.RoleStaff, models.RoleAdmin},
	ActionCreateComplaint:     {models.RoleStudent},
	ActionTransitionComplaint: {models.RoleStaff, models.RoleAdmin},
	ActionCreateLostFound:     {models.RoleStudent, models.RoleStaff, models.RoleAdmin},
	ActionResolveLostFound:    {models.RoleStaff, models.RoleAdmin},
	ActionCreatePoll:          {models.RoleStaff, models.RoleAdmin},
	ActionVote:                {models.RoleStudent},
	ActionCreateEvent:         {models.RoleStaff, models.RoleAdmin},
	ActionRSVP:                {models.RoleStudent},
	ActionCreateFeedback:      {models.RoleStudent},
	ActionRespondFeedback:     {models.RoleAdmin},
	ActionManageUsers:         {models.RoleAdmin},
	ActionJoinChallenge:       {models.RoleStudent},
}

// Can reports whether the role may perform the action.
func Can(action Action, role models.Role) bool {
	for _, allowed := range capabilities[action] {
		if allowed == role {
			return true
		}
	}
	return false
}
