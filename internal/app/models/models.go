// Package models defines the campus portal's domain records. Every
// entity is a flat JSON-serializable struct with a string id; cross
// references such as userId are denormalized strings.
package models

// Role defines a user's role in the portal
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	}
	return false
}
