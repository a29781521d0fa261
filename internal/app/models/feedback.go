package models

import "time"

// Feedback is submitted by a student; an admin may attach a response.
type Feedback struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Date     time.Time `json:"date"`
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Response string    `json:"response,omitempty"`
}
