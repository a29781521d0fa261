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

func feedbackFixture() []models.Feedback {
	return []models.Feedback{
		{ID: "f1", Title: "Library seating", Message: "Need more desks", UserID: "u-student"},
		{ID: "f2", Title: "Canteen menu", Message: "More variety please", UserID: "other"},
	}
}

func TestCreateFeedback(t *testing.T) {
	ctx := context.Background()
	svc := NewFeedbackService(testCollection(t, store.KeyFeedback, feedbackFixture()), zerolog.Nop())

	entry, err := svc.Create(ctx, student, &dto.CreateFeedbackRequest{
		Title:   "Sports equipment",
		Message: "The badminton court needs new nets",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if entry.UserID != student.ID {
		t.Errorf("Feedback not attributed to submitter: %+v", entry)
	}
	if entry.Response != "" {
		t.Error("New feedback must start without a response")
	}

	for _, actor := range []*models.User{staff, admin} {
		if _, err := svc.Create(ctx, actor, &dto.CreateFeedbackRequest{Title: "T", Message: "M"}); !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("%s submitting feedback got %v, want ErrPermissionDenied", actor.Role, err)
		}
	}
}

func TestRespondToFeedback(t *testing.T) {
	ctx := context.Background()
	svc := NewFeedbackService(testCollection(t, store.KeyFeedback, feedbackFixture()), zerolog.Nop())

	for _, actor := range []*models.User{student, staff} {
		if _, err := svc.Respond(ctx, actor, "f1", "noted"); !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("%s responding got %v, want ErrPermissionDenied", actor.Role, err)
		}
	}

	entry, err := svc.Respond(ctx, admin, "f1", "We are adding 40 desks this semester")
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if entry.Response == "" {
		t.Error("Response was not attached")
	}

	if _, err := svc.Respond(ctx, admin, "missing", "x"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("Unknown feedback got %v, want ErrResourceNotFound", err)
	}
}

func TestListFeedbackByUser(t *testing.T) {
	ctx := context.Background()
	svc := NewFeedbackService(testCollection(t, store.KeyFeedback, feedbackFixture()), zerolog.Nop())

	mine, err := svc.ListByUser(ctx, "u-student")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "f1" {
		t.Errorf("Got %+v, want only f1", mine)
	}
}
