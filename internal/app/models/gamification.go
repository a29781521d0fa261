package models

import "time"

// GrowCategory groups achievements and challenges
type GrowCategory string

const (
	GrowAcademic        GrowCategory = "academic"
	GrowExtracurricular GrowCategory = "extracurricular"
	GrowSkill           GrowCategory = "skill"
	GrowLeadership      GrowCategory = "leadership"
	GrowCommunity       GrowCategory = "community"
)

// Valid reports whether the category is one of the known categories.
func (c GrowCategory) Valid() bool {
	switch c {
	case GrowAcademic, GrowExtracurricular, GrowSkill, GrowLeadership, GrowCommunity:
		return true
	}
	return false
}

// Achievement is seeded GrowTogether data. Progress values are fixed
// constants; no rule engine recomputes them from activity elsewhere.
type Achievement struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     GrowCategory `json:"category"`
	Points       int          `json:"points"`
	DateEarned   string       `json:"dateEarned,omitempty"`
	Difficulty   string       `json:"difficulty"`
	IsEarned     bool         `json:"isEarned"`
	Requirements []string     `json:"requirements"`
	Progress     int          `json:"progress"`
}

// LeaderboardEntry is a seeded rank row, re-sorted by the requested
// scope (overall, weekly or monthly) on read.
type LeaderboardEntry struct {
	Rank          int      `json:"rank"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Department    string   `json:"department"`
	Year          string   `json:"year"`
	TotalPoints   int      `json:"totalPoints"`
	Achievements  int      `json:"achievements"`
	Badges        []string `json:"badges"`
	WeeklyPoints  int      `json:"weeklyPoints"`
	MonthlyPoints int      `json:"monthlyPoints"`
	Avatar        string   `json:"avatar,omitempty"`
}

// Activity is a GrowTogether feed item.
type Activity struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StudentName  string    `json:"studentName"`
	StudentEmail string    `json:"studentEmail"`
	Points       int       `json:"points"`
	Timestamp    time.Time `json:"timestamp"`
	Category     string    `json:"category"`
}

// Challenge is a joinable GrowTogether campaign. JoinedUsers is the
// persisted membership set; Participants counts it denormalized so the
// seeded totals (which include non-portal participants) are preserved.
type Challenge struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Category        GrowCategory `json:"category"`
	Difficulty      string       `json:"difficulty"`
	Points          int          `json:"points"`
	StartDate       string       `json:"startDate"`
	EndDate         string       `json:"endDate"`
	Participants    int          `json:"participants"`
	MaxParticipants int          `json:"maxParticipants"`
	Requirements    []string     `json:"requirements"`
	Progress        int          `json:"progress"`
	IsCompleted     bool         `json:"isCompleted"`
	Rewards         []string     `json:"rewards"`
	JoinedUsers     []string     `json:"joinedUsers,omitempty"`
}

// HasJoined reports whether the user is a member of this challenge.
func (c *Challenge) HasJoined(userID string) bool {
	for _, id := range c.JoinedUsers {
		if id == userID {
			return true
		}
	}
	return false
}
