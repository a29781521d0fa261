package dto

import "github.com/Naveenkumar3327/Campus-link/internal/app/models"

// LeaderboardScope selects which point total the leaderboard is ranked by
type LeaderboardScope string

const (
	ScopeOverall LeaderboardScope = "overall"
	ScopeWeekly  LeaderboardScope = "weekly"
	ScopeMonthly LeaderboardScope = "monthly"
)

// Valid reports whether the scope is one of the known scopes.
func (s LeaderboardScope) Valid() bool {
	switch s {
	case ScopeOverall, ScopeWeekly, ScopeMonthly:
		return true
	}
	return false
}

// ChallengeResponse is a challenge as seen by one user: IsJoined is
// derived from the persisted membership set for the requesting user.
type ChallengeResponse struct {
	models.Challenge
	IsJoined bool `json:"isJoined"`
}

// NewChallengeResponse builds the per-user view of a challenge. The raw
// membership set stays server-side.
func NewChallengeResponse(c models.Challenge, userID string) ChallengeResponse {
	resp := ChallengeResponse{
		Challenge: c,
		IsJoined:  c.HasJoined(userID),
	}
	resp.JoinedUsers = nil
	return resp
}
