package navigation

import (
	"testing"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
)

func TestMenuFor(t *testing.T) {
	tests := []struct {
		role      models.Role
		wantPaths []string
	}{
		{
			role: models.RoleStudent,
			wantPaths: []string{
				"/dashboard", "/announcements", "/timetable", "/lost-found",
				"/complaints", "/polls", "/events", "/feedback", "/growtogether", "/profile",
			},
		},
		{
			role: models.RoleStaff,
			wantPaths: []string{
				"/dashboard", "/announcements", "/lost-found", "/complaints",
				"/polls", "/events", "/profile",
			},
		},
		{
			role: models.RoleAdmin,
			wantPaths: []string{
				"/dashboard", "/announcements", "/complaints", "/users",
				"/feedback", "/polls", "/events", "/profile",
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			items := MenuFor(tt.role)
			if len(items) != len(tt.wantPaths) {
				t.Fatalf("Got %d items, want %d", len(items), len(tt.wantPaths))
			}
			for i, path := range tt.wantPaths {
				if items[i].Path != path {
					t.Errorf("Position %d is %q, want %q", i, items[i].Path, path)
				}
			}
			if items[len(items)-1].Label != "Profile" {
				t.Error("Profile must be the last menu item")
			}
		})
	}
}

func TestMenuForUnknownRole(t *testing.T) {
	items := MenuFor(models.Role("guest"))
	// Unknown roles get the base items plus profile, nothing role-gated
	if len(items) != 3 {
		t.Fatalf("Got %d items for unknown role, want 3", len(items))
	}
}
