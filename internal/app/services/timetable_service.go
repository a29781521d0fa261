package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/repositories"
	"github.com/Naveenkumar3327/Campus-link/internal/pkg/apperrors"
)

// TimetableService defines personal timetable operations. Entries are
// owner-scoped: only the creating user sees or edits them, and they are
// the one destructible record type in the portal.
type TimetableService interface {
	ListByUser(ctx context.Context, userID string) ([]models.TimetableEntry, error)
	Create(ctx context.Context, userID string, req *dto.TimetableEntryRequest) (*models.TimetableEntry, error)
	Update(ctx context.Context, userID, id string, req *dto.TimetableEntryRequest) (*models.TimetableEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

type timetableServiceImpl struct {
	entries *repositories.Collection[models.TimetableEntry]
	logger  zerolog.Logger
}

// NewTimetableService creates a new TimetableService
func NewTimetableService(entries *repositories.Collection[models.TimetableEntry], logger zerolog.Logger) TimetableService {
	return &timetableServiceImpl{
		entries: entries,
		logger:  logger,
	}
}

// ListByUser returns the owner's entries.
func (s *timetableServiceImpl) ListByUser(ctx context.Context, userID string) ([]models.TimetableEntry, error) {
	all, err := s.entries.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.TimetableEntry, 0, len(all))
	for _, e := range all {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

// Create adds an entry owned by userID.
func (s *timetableServiceImpl) Create(ctx context.Context, userID string, req *dto.TimetableEntryRequest) (*models.TimetableEntry, error) {
	entry := models.TimetableEntry{
		ID:      uuid.NewString(),
		Subject: req.Subject,
		Time:    req.Time,
		Day:     req.Day,
		UserID:  userID,
	}

	_, err := s.entries.Update(ctx, func(items []models.TimetableEntry) ([]models.TimetableEntry, error) {
		return append([]models.TimetableEntry{entry}, items...), nil
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// Update edits an entry; only the owner may edit.
func (s *timetableServiceImpl) Update(ctx context.Context, userID, id string, req *dto.TimetableEntryRequest) (*models.TimetableEntry, error) {
	var updated *models.TimetableEntry
	_, err := s.entries.Update(ctx, func(items []models.TimetableEntry) ([]models.TimetableEntry, error) {
		for i := range items {
			if items[i].ID == id {
				if items[i].UserID != userID {
					return nil, apperrors.NewForbiddenError("timetable entries can only be edited by their owner")
				}
				items[i].Subject = req.Subject
				items[i].Time = req.Time
				items[i].Day = req.Day
				updated = &items[i]
				return items, nil
			}
		}
		return nil, apperrors.NewResourceNotFoundError("timetable entry not found")
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes an entry; only the owner may delete.
func (s *timetableServiceImpl) Delete(ctx context.Context, userID, id string) error {
	_, err := s.entries.Update(ctx, func(items []models.TimetableEntry) ([]models.TimetableEntry, error) {
		for i := range items {
			if items[i].ID == id {
				if items[i].UserID != userID {
					return nil, apperrors.NewForbiddenError("timetable entries can only be deleted by their owner")
				}
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, apperrors.NewResourceNotFoundError("timetable entry not found")
	})
	return err
}
