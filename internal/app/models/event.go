package models

import "time"

// Event is a staff/admin-created campus event. RSVPUsers is the persisted
// at-most-once RSVP guard.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Image       string    `json:"image,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	RSVPUsers   []string  `json:"rsvpUsers"`
}

// HasRSVPed reports whether the user already responded to this event.
func (e *Event) HasRSVPed(userID string) bool {
	for _, id := range e.RSVPUsers {
		if id == userID {
			return true
		}
	}
	return false
}
