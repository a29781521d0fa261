package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/pkg/apperrors"
	"github.com/Naveenkumar3327/Campus-link/internal/store"
)

func pollFixture() []models.Poll {
	return []models.Poll{
		{
			ID:       "p1",
			Question: "Extend library hours?",
			Options: []models.PollOption{
				{ID: "1", Text: "Yes", Votes: 5},
				{ID: "2", Text: "No", Votes: 3},
			},
			VotedUsers: []string{},
		},
	}
}

func TestVote(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   *models.User
		pollID  string
		option  string
		wantErr error
	}{
		{name: "student votes", actor: student, pollID: "p1", option: "1"},
		{name: "staff cannot vote", actor: staff, pollID: "p1", option: "1", wantErr: apperrors.ErrPermissionDenied},
		{name: "unknown poll", actor: student, pollID: "missing", option: "1", wantErr: apperrors.ErrResourceNotFound},
		{name: "unknown option", actor: student, pollID: "p1", option: "9", wantErr: apperrors.ErrOptionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPollService(testCollection(t, store.KeyPolls, pollFixture()), zerolog.Nop())

			poll, err := svc.Vote(ctx, tt.actor, tt.pollID, tt.option)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Vote failed: %v", err)
			}

			// Exactly one option gained one vote
			if poll.TotalVotes() != 9 {
				t.Errorf("Total votes = %d, want 9", poll.TotalVotes())
			}
			if poll.Options[0].Votes != 6 {
				t.Errorf("Chosen option votes = %d, want 6", poll.Options[0].Votes)
			}
			if poll.Options[1].Votes != 3 {
				t.Errorf("Other option votes = %d, want 3", poll.Options[1].Votes)
			}
			if !poll.HasVoted(tt.actor.ID) {
				t.Error("Voter was not recorded in the voted set")
			}
		})
	}
}

func TestVoteTwiceIsRejected(t *testing.T) {
	ctx := context.Background()
	coll := testCollection(t, store.KeyPolls, pollFixture())
	svc := NewPollService(coll, zerolog.Nop())

	if _, err := svc.Vote(ctx, student, "p1", "1"); err != nil {
		t.Fatalf("First vote failed: %v", err)
	}

	// Same user, either option: still a conflict
	if _, err := svc.Vote(ctx, student, "p1", "2"); !errors.Is(err, apperrors.ErrAlreadyVoted) {
		t.Fatalf("Second vote got error %v, want ErrAlreadyVoted", err)
	}

	// The guard survives because it is persisted with the poll, and the
	// rejected vote changed nothing
	polls, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if polls[0].TotalVotes() != 9 {
		t.Errorf("Total votes = %d after rejected revote, want 9", polls[0].TotalVotes())
	}
	if len(polls[0].VotedUsers) != 1 {
		t.Errorf("Voted set has %d entries, want 1", len(polls[0].VotedUsers))
	}
}

func TestCreatePoll(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   *models.User
		req     dto.CreatePollRequest
		wantErr error
	}{
		{
			name:  "staff creates poll",
			actor: staff,
			req:   dto.CreatePollRequest{Question: "Canteen menu?", Options: []string{"Keep", "Change"}},
		},
		{
			name:  "admin creates poll",
			actor: admin,
			req:   dto.CreatePollRequest{Question: "New gym hours?", Options: []string{"6am", "7am", "8am"}},
		},
		{
			name:    "student cannot create",
			actor:   student,
			req:     dto.CreatePollRequest{Question: "Q", Options: []string{"a", "b"}},
			wantErr: apperrors.ErrPermissionDenied,
		},
		{
			name:    "single option rejected",
			actor:   staff,
			req:     dto.CreatePollRequest{Question: "Q", Options: []string{"only"}},
			wantErr: apperrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPollService(testCollection(t, store.KeyPolls, pollFixture()), zerolog.Nop())

			poll, err := svc.Create(ctx, tt.actor, &tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}

			if poll.ID == "" {
				t.Error("Expected a generated poll id")
			}
			if len(poll.Options) != len(tt.req.Options) {
				t.Fatalf("Got %d options, want %d", len(poll.Options), len(tt.req.Options))
			}
			for i, opt := range poll.Options {
				if opt.Votes != 0 {
					t.Errorf("Option %d starts with %d votes, want 0", i, opt.Votes)
				}
			}
			// Ordinal option ids, matching the seeded polls
			if poll.Options[0].ID != "1" {
				t.Errorf("First option id = %q, want \"1\"", poll.Options[0].ID)
			}

			// New polls appear first
			polls, err := svc.List(ctx, "")
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if polls[0].ID != poll.ID {
				t.Error("New poll is not first in the list")
			}
		})
	}
}

func TestListPollsSearchesOptions(t *testing.T) {
	ctx := context.Background()
	svc := NewPollService(testCollection(t, store.KeyPolls, pollFixture()), zerolog.Nop())

	polls, err := svc.List(ctx, "yes")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(polls) != 1 {
		t.Fatalf("Search over option text matched %d polls, want 1", len(polls))
	}

	polls, err = svc.List(ctx, "cafeteria")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(polls) != 0 {
		t.Errorf("Unrelated search matched %d polls, want 0", len(polls))
	}
}
