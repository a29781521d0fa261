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

// ComplaintService defines complaint operations
type ComplaintService interface {
	List(ctx context.Context, search, category, status string) ([]models.Complaint, error)
	ListByUser(ctx context.Context, userID string) ([]models.Complaint, error)
	Create(ctx context.Context, actor *models.User, req *dto.CreateComplaintRequest) (*models.Complaint, error)
	UpdateStatus(ctx context.Context, actor *models.User, id string, status models.ComplaintStatus) (*models.Complaint, error)
}

type complaintServiceImpl struct {
	complaints *repositories.Collection[models.Complaint]
	logger     zerolog.Logger
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(complaints *repositories.Collection[models.Complaint], logger zerolog.Logger) ComplaintService {
	return &complaintServiceImpl{
		complaints: complaints,
		logger:     logger,
	}
}

// List returns complaints matching the search term ANDed with category
// and status equality filters.
func (s *complaintServiceImpl) List(ctx context.Context, search, category, status string) ([]models.Complaint, error) {
	all, err := s.complaints.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Complaint, 0, len(all))
	for _, c := range all {
		if matchText(search, c.Title, c.Description) &&
			matchEquals(category, string(c.Category)) &&
			matchEquals(status, string(c.Status)) {
			result = append(result, c)
		}
	}
	return result, nil
}

// ListByUser returns the "my complaints" view.
func (s *complaintServiceImpl) ListByUser(ctx context.Context, userID string) ([]models.Complaint, error) {
	all, err := s.complaints.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Complaint, 0, len(all))
	for _, c := range all {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

// Create files a new complaint with status pending, prepended to the
// collection.
func (s *complaintServiceImpl) Create(ctx context.Context, actor *models.User, req *dto.CreateComplaintRequest) (*models.Complaint, error) {
	if !appAuth.Can(appAuth.ActionCreateComplaint, actor.Role) {
		return nil, apperrors.NewForbiddenError("only students can file complaints")
	}

	category := models.ComplaintCategory(req.Category)
	if !category.Valid() {
		return nil, apperrors.NewValidationError("unknown complaint category " + req.Category)
	}

	complaint := models.Complaint{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		Status:      models.ComplaintPending,
		Date:        time.Now(),
		UserID:      actor.ID,
		UserName:    actor.Name,
	}

	_, err := s.complaints.Update(ctx, func(items []models.Complaint) ([]models.Complaint, error) {
		return append([]models.Complaint{complaint}, items...), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", complaint.ID).Str("category", req.Category).Msg("Complaint filed")
	return &complaint, nil
}

// UpdateStatus transitions a complaint. Staff and admins only; the
// status is the only field that changes after creation.
func (s *complaintServiceImpl) UpdateStatus(ctx context.Context, actor *models.User, id string, status models.ComplaintStatus) (*models.Complaint, error) {
	if !appAuth.Can(appAuth.ActionTransitionComplaint, actor.Role) {
		return nil, apperrors.NewForbiddenError("only staff and admins can update complaint status")
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown complaint status " + string(status))
	}

	var updated *models.Complaint
	_, err := s.complaints.Update(ctx, func(items []models.Complaint) ([]models.Complaint, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				updated = &items[i]
				return items, nil
			}
		}
		return nil, apperrors.NewResourceNotFoundError("complaint not found")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("status", string(status)).Msg("Complaint status updated")
	return updated, nil
}
