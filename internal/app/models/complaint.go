package models

import "time"

// ComplaintCategory classifies a complaint
type ComplaintCategory string

const (
	ComplaintWater       ComplaintCategory = "water"
	ComplaintCleaning    ComplaintCategory = "cleaning"
	ComplaintElectricity ComplaintCategory = "electricity"
	ComplaintInternet    ComplaintCategory = "internet"
	ComplaintOther       ComplaintCategory = "other"
)

// Valid reports whether the category is one of the known categories.
func (c ComplaintCategory) Valid() bool {
	switch c {
	case ComplaintWater, ComplaintCleaning, ComplaintElectricity, ComplaintInternet, ComplaintOther:
		return true
	}
	return false
}

// ComplaintStatus is the lifecycle state of a complaint
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

// Valid reports whether the status is one of the known statuses.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved:
		return true
	}
	return false
}

// Complaint is filed by a student; staff and admins move it through its
// status transitions. Only the status changes after creation.
type Complaint struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    ComplaintCategory `json:"category"`
	Status      ComplaintStatus   `json:"status"`
	Date        time.Time         `json:"date"`
	UserID      string            `json:"userId"`
	UserName    string            `json:"userName"`
}
