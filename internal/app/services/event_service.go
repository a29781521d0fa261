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

// EventService defines campus event operations
type EventService interface {
	List(ctx context.Context, search string) ([]models.Event, error)
	Create(ctx context.Context, actor *models.User, req *dto.CreateEventRequest) (*models.Event, error)
	RSVP(ctx context.Context, actor *models.User, eventID string) (*models.Event, error)
}

type eventServiceImpl struct {
	events *repositories.Collection[models.Event]
	logger zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(events *repositories.Collection[models.Event], logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		events: events,
		logger: logger,
	}
}

// List returns events matching the search term over title, description
// and location.
func (s *eventServiceImpl) List(ctx context.Context, search string) ([]models.Event, error) {
	all, err := s.events.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Event, 0, len(all))
	for _, e := range all {
		if matchText(search, e.Title, e.Description, e.Location) {
			result = append(result, e)
		}
	}
	return result, nil
}

// Create adds a campus event. Staff and admins only.
func (s *eventServiceImpl) Create(ctx context.Context, actor *models.User, req *dto.CreateEventRequest) (*models.Event, error) {
	if !appAuth.Can(appAuth.ActionCreateEvent, actor.Role) {
		return nil, apperrors.NewForbiddenError("only staff and admins can create events")
	}

	eventDate, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		// Date-only form is accepted too
		eventDate, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("event date must be RFC3339 or YYYY-MM-DD")
		}
	}

	event := models.Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Date:        eventDate,
		Location:    req.Location,
		Image:       req.Image,
		CreatedBy:   actor.Name,
		RSVPUsers:   []string{},
	}

	_, err = s.events.Update(ctx, func(items []models.Event) ([]models.Event, error) {
		return append([]models.Event{event}, items...), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", event.ID).Msg("Event created")
	return &event, nil
}

// RSVP records a student's attendance once. The RSVP set is persisted,
// so a reload cannot re-RSVP.
func (s *eventServiceImpl) RSVP(ctx context.Context, actor *models.User, eventID string) (*models.Event, error) {
	if !appAuth.Can(appAuth.ActionRSVP, actor.Role) {
		return nil, apperrors.NewForbiddenError("only students can RSVP")
	}

	var updated *models.Event
	_, err := s.events.Update(ctx, func(items []models.Event) ([]models.Event, error) {
		for i := range items {
			if items[i].ID != eventID {
				continue
			}
			if items[i].HasRSVPed(actor.ID) {
				return nil, apperrors.ErrAlreadyRSVPed
			}
			items[i].RSVPUsers = append(items[i].RSVPUsers, actor.ID)
			updated = &items[i]
			return items, nil
		}
		return nil, apperrors.NewResourceNotFoundError("event not found")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("eventId", eventID).Str("userId", actor.ID).Msg("RSVP recorded")
	return updated, nil
}
