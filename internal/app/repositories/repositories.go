// Package repositories maps each domain collection onto the key-value
// store. Every collection is persisted as a single JSON array under a
// fixed key; repositories only ever read and write whole collections.
package repositories

import (
	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/seed"
	"github.com/Naveenkumar3327/Campus-link/internal/store"
)

// Repositories is the container for all collection repositories.
type Repositories struct {
	Users         *Collection[models.User]
	RefreshTokens *Collection[models.RefreshToken]
	Announcements *Collection[models.Announcement]
	Complaints    *Collection[models.Complaint]
	LostFound     *Collection[models.LostFoundItem]
	Polls         *Collection[models.Poll]
	Events        *Collection[models.Event]
	Feedback      *Collection[models.Feedback]
	Timetable     *Collection[models.TimetableEntry]
	Achievements  *Collection[models.Achievement]
	Leaderboard   *Collection[models.LeaderboardEntry]
	Activities    *Collection[models.Activity]
	Challenges    *Collection[models.Challenge]
}

// New wires every collection to the store with its seed defaults.
func New(st store.Store, logger zerolog.Logger) *Repositories {
	return &Repositories{
		Users:         NewCollection(st, store.KeyUsers, seed.Users, logger),
		RefreshTokens: NewCollection(st, store.KeyRefreshTokens, seed.RefreshTokens, logger),
		Announcements: NewCollection(st, store.KeyAnnouncements, seed.Announcements, logger),
		Complaints:    NewCollection(st, store.KeyComplaints, seed.Complaints, logger),
		LostFound:     NewCollection(st, store.KeyLostFound, seed.LostFoundItems, logger),
		Polls:         NewCollection(st, store.KeyPolls, seed.Polls, logger),
		Events:        NewCollection(st, store.KeyEvents, seed.Events, logger),
		Feedback:      NewCollection(st, store.KeyFeedback, seed.FeedbackEntries, logger),
		Timetable:     NewCollection(st, store.KeyTimetable, seed.TimetableEntries, logger),
		Achievements:  NewCollection(st, store.KeyAchievements, seed.Achievements, logger),
		Leaderboard:   NewCollection(st, store.KeyLeaderboard, seed.Leaderboard, logger),
		Activities:    NewCollection(st, store.KeyActivities, seed.Activities, logger),
		Challenges:    NewCollection(st, store.KeyChallenges, seed.Challenges, logger),
	}
}
