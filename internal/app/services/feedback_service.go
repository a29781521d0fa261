package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appAuth "github.com/Naveenkumar3327/Campus-link/internal/app/auth"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/repositories"
	"github.com/Naveenkumar3327/Campus-link/internal/pkg/apperrors"
)

// FeedbackService defines feedback operations
type FeedbackService interface {
	List(ctx context.Context, search string) ([]models.Feedback, error)
	ListByUser(ctx context.Context, userID string) ([]models.Feedback, error)
	Create(ctx context.Context, actor *models.User, req *dto.CreateFeedbackRequest) (*models.Feedback, error)
	Respond(ctx context.Context, actor *models.User, id, response string) (*models.Feedback, error)
}

type feedbackServiceImpl struct {
	feedback *repositories.Collection[models.Feedback]
	logger   zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedback *repositories.Collection[models.Feedback], logger zerolog.Logger) FeedbackService {
	return &feedbackServiceImpl{
		feedback: feedback,
		logger:   logger,
	}
}

// List returns all feedback matching the search term.
func (s *feedbackServiceImpl) List(ctx context.Context, search string) ([]models.Feedback, error) {
	all, err := s.feedback.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Feedback, 0, len(all))
	for _, f := range all {
		if matchText(search, f.Title, f.Message) {
			result = append(result, f)
		}
	}
	return result, nil
}

// ListByUser returns feedback submitted by one user.
func (s *feedbackServiceImpl) ListByUser(ctx context.Context, userID string) ([]models.Feedback, error) {
	all, err := s.feedback.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Feedback, 0, len(all))
	for _, f := range all {
		if f.UserID == userID {
			result = append(result, f)
		}
	}
	return result, nil
}

// Create submits new feedback, prepended to the collection.
func (s *feedbackServiceImpl) Create(ctx context.Context, actor *models.User, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	if !appAuth.Can(appAuth.ActionCreateFeedback, actor.Role) {
		return nil, apperrors.NewForbiddenError("only students can submit feedback")
	}

	entry := models.Feedback{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Message:  req.Message,
		Date:     time.Now(),
		UserID:   actor.ID,
		UserName: actor.Name,
	}

	_, err := s.feedback.Update(ctx, func(items []models.Feedback) ([]models.Feedback, error) {
		return append([]models.Feedback{entry}, items...), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", entry.ID).Msg("Feedback submitted")
	return &entry, nil
}

// Respond attaches an admin response to a feedback entry.
func (s *feedbackServiceImpl) Respond(ctx context.Context, actor *models.User, id, response string) (*models.Feedback, error) {
	if !appAuth.Can(appAuth.ActionRespondFeedback, actor.Role) {
		return nil, apperrors.NewForbiddenError("only admins can respond to feedback")
	}

	var updated *models.Feedback
	_, err := s.feedback.Update(ctx, func(items []models.Feedback) ([]models.Feedback, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Response = response
				updated = &items[i]
				return items, nil
			}
		}
		return nil, apperrors.NewResourceNotFoundError("feedback not found")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Msg("Feedback response recorded")
	return updated, nil
}
