package models

import "time"

// AnnouncementCategory classifies an announcement
type AnnouncementCategory string

const (
	AnnouncementExam    AnnouncementCategory = "exam"
	AnnouncementEvent   AnnouncementCategory = "event"
	AnnouncementHoliday AnnouncementCategory = "holiday"
	AnnouncementGeneral AnnouncementCategory = "general"
)

// Valid reports whether the category is one of the known categories.
func (c AnnouncementCategory) Valid() bool {
	switch c {
	case AnnouncementExam, AnnouncementEvent, AnnouncementHoliday, AnnouncementGeneral:
		return true
	}
	return false
}

// Announcement is a campus-wide notice. Immutable after creation.
type Announcement struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	Body       string               `json:"body"`
	Category   AnnouncementCategory `json:"category"`
	Date       time.Time            `json:"date"`
	Author     string               `json:"author"`
	AuthorRole Role                 `json:"authorRole"`
}
