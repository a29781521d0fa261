package models

// TimetableEntry is a personal schedule slot. It is the only entity its
// owner can edit and delete.
type TimetableEntry struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Time    string `json:"time"`
	Day     string `json:"day"`
	UserID  string `json:"userId"`
}
