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

func eventFixture() []models.Event {
	return []models.Event{
		{ID: "e1", Title: "Tech Fest", Location: "Main Auditorium", RSVPUsers: []string{}},
	}
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   *models.User
		date    string
		wantErr error
	}{
		{name: "date-only form", actor: staff, date: "2026-10-01"},
		{name: "RFC3339 form", actor: admin, date: "2026-10-01T18:00:00Z"},
		{name: "bad date", actor: staff, date: "next tuesday", wantErr: apperrors.ErrValidationFailed},
		{name: "student cannot create", actor: student, date: "2026-10-01", wantErr: apperrors.ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEventService(testCollection(t, store.KeyEvents, eventFixture()), zerolog.Nop())

			event, err := svc.Create(ctx, tt.actor, &dto.CreateEventRequest{
				Title:       "Career Fair",
				Description: "Annual recruiting event",
				Date:        tt.date,
				Location:    "Sports Complex",
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if event.CreatedBy != tt.actor.Name {
				t.Errorf("CreatedBy = %q, want %q", event.CreatedBy, tt.actor.Name)
			}
			if event.Date.IsZero() {
				t.Error("Event date was not parsed")
			}
		})
	}
}

func TestRSVP(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(testCollection(t, store.KeyEvents, eventFixture()), zerolog.Nop())

	event, err := svc.RSVP(ctx, student, "e1")
	if err != nil {
		t.Fatalf("RSVP failed: %v", err)
	}
	if !event.HasRSVPed(student.ID) {
		t.Error("User missing from RSVP set")
	}

	if _, err := svc.RSVP(ctx, student, "e1"); !errors.Is(err, apperrors.ErrAlreadyRSVPed) {
		t.Fatalf("Second RSVP got %v, want ErrAlreadyRSVPed", err)
	}

	if _, err := svc.RSVP(ctx, staff, "e1"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("Staff RSVP got %v, want ErrPermissionDenied", err)
	}

	if _, err := svc.RSVP(ctx, student, "missing"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("Unknown event got %v, want ErrResourceNotFound", err)
	}
}
