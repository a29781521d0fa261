package services

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appAuth "github.com/Naveenkumar3327/Campus-link/internal/app/auth"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/repositories"
	"github.com/Naveenkumar3327/Campus-link/internal/pkg/apperrors"
)

// PollService defines poll operations
type PollService interface {
	List(ctx context.Context, search string) ([]models.Poll, error)
	Create(ctx context.Context, actor *models.User, req *dto.CreatePollRequest) (*models.Poll, error)
	Vote(ctx context.Context, actor *models.User, pollID, optionID string) (*models.Poll, error)
}

type pollServiceImpl struct {
	polls  *repositories.Collection[models.Poll]
	logger zerolog.Logger
}

// NewPollService creates a new PollService
func NewPollService(polls *repositories.Collection[models.Poll], logger zerolog.Logger) PollService {
	return &pollServiceImpl{
		polls:  polls,
		logger: logger,
	}
}

// List returns polls whose question or option text matches the search
// term.
func (s *pollServiceImpl) List(ctx context.Context, search string) ([]models.Poll, error) {
	all, err := s.polls.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Poll, 0, len(all))
	for _, p := range all {
		fields := []string{p.Question}
		for _, opt := range p.Options {
			fields = append(fields, opt.Text)
		}
		if matchText(search, fields...) {
			result = append(result, p)
		}
	}
	return result, nil
}

// Create starts a new poll with zeroed vote counts. Staff and admins
// only. Option ids are ordinal, matching the seeded polls.
func (s *pollServiceImpl) Create(ctx context.Context, actor *models.User, req *dto.CreatePollRequest) (*models.Poll, error) {
	if !appAuth.Can(appAuth.ActionCreatePoll, actor.Role) {
		return nil, apperrors.NewForbiddenError("only staff and admins can create polls")
	}
	if len(req.Options) < 2 {
		return nil, apperrors.NewValidationError("a poll needs at least two options")
	}

	options := make([]models.PollOption, len(req.Options))
	for i, text := range req.Options {
		options[i] = models.PollOption{
			ID:   strconv.Itoa(i + 1),
			Text: text,
		}
	}

	poll := models.Poll{
		ID:         uuid.NewString(),
		Question:   req.Question,
		Options:    options,
		CreatedBy:  actor.Name,
		CreatedAt:  time.Now(),
		VotedUsers: []string{},
	}

	_, err := s.polls.Update(ctx, func(items []models.Poll) ([]models.Poll, error) {
		return append([]models.Poll{poll}, items...), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", poll.ID).Int("options", len(options)).Msg("Poll created")
	return &poll, nil
}

// Vote casts a student's single vote: exactly one option count goes up
// by one and the user enters the persisted voted set. Voting twice is a
// conflict, regardless of restarts.
func (s *pollServiceImpl) Vote(ctx context.Context, actor *models.User, pollID, optionID string) (*models.Poll, error) {
	if !appAuth.Can(appAuth.ActionVote, actor.Role) {
		return nil, apperrors.NewForbiddenError("only students can vote")
	}

	var voted *models.Poll
	_, err := s.polls.Update(ctx, func(items []models.Poll) ([]models.Poll, error) {
		for i := range items {
			if items[i].ID != pollID {
				continue
			}
			if items[i].HasVoted(actor.ID) {
				return nil, apperrors.ErrAlreadyVoted
			}
			for j := range items[i].Options {
				if items[i].Options[j].ID == optionID {
					items[i].Options[j].Votes++
					items[i].VotedUsers = append(items[i].VotedUsers, actor.ID)
					voted = &items[i]
					return items, nil
				}
			}
			return nil, apperrors.ErrOptionNotFound
		}
		return nil, apperrors.NewResourceNotFoundError("poll not found")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("pollId", pollID).Str("optionId", optionID).Msg("Vote recorded")
	return voted, nil
}
