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

// AnnouncementService defines announcement operations
type AnnouncementService interface {
	List(ctx context.Context, search, category string) ([]models.Announcement, error)
	Create(ctx context.Context, actor *models.User, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
}

type announcementServiceImpl struct {
	announcements *repositories.Collection[models.Announcement]
	logger        zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcements *repositories.Collection[models.Announcement], logger zerolog.Logger) AnnouncementService {
	return &announcementServiceImpl{
		announcements: announcements,
		logger:        logger,
	}
}

// List returns announcements matching the free-text search over title
// and body ANDed with the category filter.
func (s *announcementServiceImpl) List(ctx context.Context, search, category string) ([]models.Announcement, error) {
	all, err := s.announcements.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Announcement, 0, len(all))
	for _, a := range all {
		if matchText(search, a.Title, a.Body) && matchEquals(category, string(a.Category)) {
			result = append(result, a)
		}
	}
	return result, nil
}

// Create prepends a new announcement. Staff and admins only;
// announcements are immutable afterwards.
func (s *announcementServiceImpl) Create(ctx context.Context, actor *models.User, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if !appAuth.Can(appAuth.ActionCreateAnnouncement, actor.Role) {
		return nil, apperrors.NewForbiddenError("only staff and admins can post announcements")
	}

	category := models.AnnouncementCategory(req.Category)
	if !category.Valid() {
		return nil, apperrors.NewValidationError("unknown announcement category " + req.Category)
	}

	announcement := models.Announcement{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Body:       req.Body,
		Category:   category,
		Date:       time.Now(),
		Author:     actor.Name,
		AuthorRole: actor.Role,
	}

	_, err := s.announcements.Update(ctx, func(items []models.Announcement) ([]models.Announcement, error) {
		return append([]models.Announcement{announcement}, items...), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", announcement.ID).Str("category", req.Category).Msg("Announcement created")
	return &announcement, nil
}
