// Package store provides the key-value persistence layer. Each campus
// collection is stored as one JSON document under a fixed key, mirroring
// the single-key-per-collection layout the portal has always used.
package store

import "context"

// Store is a string key-value store holding one serialized collection
// per key. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value for key. The boolean reports whether the key
	// was present; an absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set overwrites the full value for key.
	Set(ctx context.Context, key, value string) error

	// Close releases any resources held by the store.
	Close() error
}

// Well-known collection keys. Two extra keys hold identity state: the
// users directory and the issued refresh tokens.
const (
	KeyUsers         = "users"
	KeyAnnouncements = "announcements"
	KeyComplaints    = "complaints"
	KeyLostFound     = "lost_found_items"
	KeyPolls         = "polls"
	KeyEvents        = "events"
	KeyFeedback      = "feedback"
	KeyTimetable     = "timetable_entries"
	KeyAchievements  = "achievements"
	KeyLeaderboard   = "leaderboard"
	KeyActivities    = "activities"
	KeyChallenges    = "challenges"
	KeyRefreshTokens = "refresh_tokens"
)
