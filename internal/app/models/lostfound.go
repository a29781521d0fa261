package models

import "time"

// LostFoundCategory classifies a lost-and-found item
type LostFoundCategory string

const (
	LostFoundElectronics LostFoundCategory = "electronics"
	LostFoundBooks       LostFoundCategory = "books"
	LostFoundClothing    LostFoundCategory = "clothing"
	LostFoundAccessories LostFoundCategory = "accessories"
	LostFoundOther       LostFoundCategory = "other"
)

// Valid reports whether the category is one of the known categories.
func (c LostFoundCategory) Valid() bool {
	switch c {
	case LostFoundElectronics, LostFoundBooks, LostFoundClothing, LostFoundAccessories, LostFoundOther:
		return true
	}
	return false
}

// LostFoundType marks an item as lost or found
type LostFoundType string

const (
	TypeLost  LostFoundType = "lost"
	TypeFound LostFoundType = "found"
)

// Valid reports whether the type is lost or found.
func (t LostFoundType) Valid() bool {
	return t == TypeLost || t == TypeFound
}

// LostFoundItem is a lost or found posting. Any user can create one;
// staff and admins flip the resolved flag.
type LostFoundItem struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    LostFoundCategory `json:"category"`
	Type        LostFoundType     `json:"type"`
	Location    string            `json:"location"`
	Date        time.Time         `json:"date"`
	Image       string            `json:"image,omitempty"`
	PostedBy    string            `json:"postedBy"`
	Resolved    bool              `json:"resolved"`
}
