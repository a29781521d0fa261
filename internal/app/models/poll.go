package models

import "time"

// PollOption is one choice within a poll. Vote counts only increase.
type PollOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Poll is a staff/admin-created vote. VotedUsers is the persisted
// at-most-once guard: a user id present there cannot vote again, even
// across restarts.
type Poll struct {
	ID         string       `json:"id"`
	Question   string       `json:"question"`
	Options    []PollOption `json:"options"`
	CreatedBy  string       `json:"createdBy"`
	CreatedAt  time.Time    `json:"createdAt"`
	VotedUsers []string     `json:"votedUsers"`
}

// HasVoted reports whether the user already voted on this poll.
func (p *Poll) HasVoted(userID string) bool {
	for _, id := range p.VotedUsers {
		if id == userID {
			return true
		}
	}
	return false
}

// TotalVotes returns the vote count summed over all options.
func (p *Poll) TotalVotes() int {
	total := 0
	for _, opt := range p.Options {
		total += opt.Votes
	}
	return total
}
