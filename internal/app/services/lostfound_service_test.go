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

func lostFoundFixture() []models.LostFoundItem {
	return []models.LostFoundItem{
		{ID: "lf1", Name: "Blue Backpack", Category: models.LostFoundAccessories, Type: models.TypeLost, Location: "Library"},
		{ID: "lf2", Name: "Casio Calculator", Category: models.LostFoundElectronics, Type: models.TypeFound, Location: "Lab 3"},
	}
}

func TestCreateLostFoundItemAnyRole(t *testing.T) {
	ctx := context.Background()

	// Unlike most write operations, posting is open to every role
	for _, actor := range []*models.User{student, staff, admin} {
		t.Run(string(actor.Role), func(t *testing.T) {
			svc := NewLostFoundService(testCollection(t, store.KeyLostFound, lostFoundFixture()), zerolog.Nop())

			item, err := svc.Create(ctx, actor, &dto.CreateLostFoundRequest{
				Name:        "Umbrella",
				Description: "Black, long handle",
				Category:    "other",
				Type:        "found",
				Location:    "Bus stop",
			})
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if item.Resolved {
				t.Error("New item must start unresolved")
			}
			if item.PostedBy != actor.Name {
				t.Errorf("PostedBy = %q, want %q", item.PostedBy, actor.Name)
			}
		})
	}
}

func TestCreateLostFoundItemValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewLostFoundService(testCollection(t, store.KeyLostFound, lostFoundFixture()), zerolog.Nop())

	_, err := svc.Create(ctx, student, &dto.CreateLostFoundRequest{
		Name: "X", Description: "Y", Category: "vehicles", Type: "lost", Location: "Z",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Unknown category got %v, want ErrValidationFailed", err)
	}

	_, err = svc.Create(ctx, student, &dto.CreateLostFoundRequest{
		Name: "X", Description: "Y", Category: "other", Type: "misplaced", Location: "Z",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Unknown type got %v, want ErrValidationFailed", err)
	}
}

func TestResolveLostFoundItem(t *testing.T) {
	ctx := context.Background()
	svc := NewLostFoundService(testCollection(t, store.KeyLostFound, lostFoundFixture()), zerolog.Nop())

	if _, err := svc.Resolve(ctx, student, "lf1"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("Student resolving got %v, want ErrPermissionDenied", err)
	}

	item, err := svc.Resolve(ctx, staff, "lf1")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !item.Resolved {
		t.Error("Item not marked resolved")
	}

	if _, err := svc.Resolve(ctx, staff, "missing"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("Unknown item got %v, want ErrResourceNotFound", err)
	}
}

func TestListLostFoundFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewLostFoundService(testCollection(t, store.KeyLostFound, lostFoundFixture()), zerolog.Nop())

	got, err := svc.List(ctx, "", "", "found")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "lf2" {
		t.Errorf("Type filter returned %+v, want only lf2", got)
	}

	got, err = svc.List(ctx, "library", "all", "all")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "lf1" {
		t.Errorf("Location search returned %+v, want only lf1", got)
	}
}
