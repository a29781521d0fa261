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

// LostFoundService defines lost-and-found operations
type LostFoundService interface {
	List(ctx context.Context, search, category, itemType string) ([]models.LostFoundItem, error)
	Create(ctx context.Context, actor *models.User, req *dto.CreateLostFoundRequest) (*models.LostFoundItem, error)
	Resolve(ctx context.Context, actor *models.User, id string) (*models.LostFoundItem, error)
}

type lostFoundServiceImpl struct {
	items  *repositories.Collection[models.LostFoundItem]
	logger zerolog.Logger
}

// NewLostFoundService creates a new LostFoundService
func NewLostFoundService(items *repositories.Collection[models.LostFoundItem], logger zerolog.Logger) LostFoundService {
	return &lostFoundServiceImpl{
		items:  items,
		logger: logger,
	}
}

// List returns items matching the search term ANDed with category and
// lost/found type filters.
func (s *lostFoundServiceImpl) List(ctx context.Context, search, category, itemType string) ([]models.LostFoundItem, error) {
	all, err := s.items.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.LostFoundItem, 0, len(all))
	for _, item := range all {
		if matchText(search, item.Name, item.Description, item.Location) &&
			matchEquals(category, string(item.Category)) &&
			matchEquals(itemType, string(item.Type)) {
			result = append(result, item)
		}
	}
	return result, nil
}

// Create posts a lost or found item. Any authenticated user may post.
func (s *lostFoundServiceImpl) Create(ctx context.Context, actor *models.User, req *dto.CreateLostFoundRequest) (*models.LostFoundItem, error) {
	if !appAuth.Can(appAuth.ActionCreateLostFound, actor.Role) {
		return nil, apperrors.NewForbiddenError("not allowed to post lost and found items")
	}

	category := models.LostFoundCategory(req.Category)
	if !category.Valid() {
		return nil, apperrors.NewValidationError("unknown item category " + req.Category)
	}
	itemType := models.LostFoundType(req.Type)
	if !itemType.Valid() {
		return nil, apperrors.NewValidationError("item type must be lost or found")
	}

	item := models.LostFoundItem{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Type:        itemType,
		Location:    req.Location,
		Date:        time.Now(),
		Image:       req.Image,
		PostedBy:    actor.Name,
		Resolved:    false,
	}

	_, err := s.items.Update(ctx, func(items []models.LostFoundItem) ([]models.LostFoundItem, error) {
		return append([]models.LostFoundItem{item}, items...), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", item.ID).Str("type", req.Type).Msg("Lost and found item posted")
	return &item, nil
}

// Resolve marks an item resolved. Staff and admins only.
func (s *lostFoundServiceImpl) Resolve(ctx context.Context, actor *models.User, id string) (*models.LostFoundItem, error) {
	if !appAuth.Can(appAuth.ActionResolveLostFound, actor.Role) {
		return nil, apperrors.NewForbiddenError("only staff and admins can resolve items")
	}

	var resolved *models.LostFoundItem
	_, err := s.items.Update(ctx, func(items []models.LostFoundItem) ([]models.LostFoundItem, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Resolved = true
				resolved = &items[i]
				return items, nil
			}
		}
		return nil, apperrors.NewResourceNotFoundError("item not found")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Msg("Lost and found item resolved")
	return resolved, nil
}
