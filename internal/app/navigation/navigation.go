// Package navigation computes the menu each role sees. The mapping is a
// static table: base items first, role items appended, profile always
// last.
package navigation

import "github.com/Naveenkumar3327/Campus-link/internal/app/models"

// Item is one navigation entry.
type Item struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var baseItems = []Item{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Announcements", Path: "/announcements"},
}

var roleItems = map[models.Role][]Item{
	models.RoleStudent: {
		{Label: "Timetable", Path: "/timetable"},
		{Label: "Lost & Found", Path: "/lost-found"},
		{Label: "Complaints", Path: "/complaints"},
		{Label: "Polls", Path: "/polls"},
		{Label: "Events", Path: "/events"},
		{Label: "Feedback", Path: "/feedback"},
		{Label: "GrowTogether", Path: "/growtogether"},
	},
	models.RoleStaff: {
		{Label: "Lost & Found", Path: "/lost-found"},
		{Label: "Complaints", Path: "/complaints"},
		{Label: "Polls", Path: "/polls"},
		{Label: "Events", Path: "/events"},
	},
	models.RoleAdmin: {
		{Label: "Complaints", Path: "/complaints"},
		{Label: "Users", Path: "/users"},
		{Label: "Feedback", Path: "/feedback"},
		{Label: "Polls", Path: "/polls"},
		{Label: "Events", Path: "/events"},
	},
}

var profileItem = Item{Label: "Profile", Path: "/profile"}

// MenuFor returns the ordered navigation items for a role.
func MenuFor(role models.Role) []Item {
	items := make([]Item, 0, len(baseItems)+len(roleItems[role])+1)
	items = append(items, baseItems...)
	items = append(items, roleItems[role]...)
	items = append(items, profileItem)
	return items
}
