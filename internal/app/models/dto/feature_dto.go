package dto

// CreateAnnouncementRequest creates a campus announcement
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Category string `json:"category" binding:"required,oneof=exam event holiday general"`
}

// CreateComplaintRequest files a complaint
type CreateComplaintRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=water cleaning electricity internet other"`
}

// UpdateComplaintStatusRequest moves a complaint through its lifecycle
type UpdateComplaintStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in-progress resolved"`
}

// CreateLostFoundRequest posts a lost or found item
type CreateLostFoundRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=electronics books clothing accessories other"`
	Type        string `json:"type" binding:"required,oneof=lost found"`
	Location    string `json:"location" binding:"required"`
	Image       string `json:"image,omitempty"`
}

// CreatePollRequest creates a poll with at least two options
type CreatePollRequest struct {
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options" binding:"required,min=2,dive,required"`
}

// VoteRequest casts a vote for one option
type VoteRequest struct {
	OptionID string `json:"optionId" binding:"required"`
}

// CreateEventRequest creates a campus event
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Image       string `json:"image,omitempty"`
}

// CreateFeedbackRequest submits feedback
type CreateFeedbackRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// RespondFeedbackRequest attaches an admin response to feedback
type RespondFeedbackRequest struct {
	Response string `json:"response" binding:"required"`
}

// TimetableEntryRequest creates or updates a personal timetable slot
type TimetableEntryRequest struct {
	Subject string `json:"subject" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Day     string `json:"day" binding:"required"`
}
