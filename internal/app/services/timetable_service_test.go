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

func timetableFixture() []models.TimetableEntry {
	return []models.TimetableEntry{
		{ID: "t1", Subject: "Data Structures", Time: "09:00", Day: "Monday", UserID: "u-student"},
		{ID: "t2", Subject: "Physics", Time: "11:00", Day: "Monday", UserID: "someone-else"},
	}
}

func TestTimetableIsPerUser(t *testing.T) {
	ctx := context.Background()
	svc := NewTimetableService(testCollection(t, store.KeyTimetable, timetableFixture()), zerolog.Nop())

	mine, err := svc.ListByUser(ctx, "u-student")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "t1" {
		t.Errorf("Got %+v, want only t1", mine)
	}
}

func TestTimetableCreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewTimetableService(testCollection(t, store.KeyTimetable, timetableFixture()), zerolog.Nop())

	entry, err := svc.Create(ctx, "u-student", &dto.TimetableEntryRequest{
		Subject: "Compilers", Time: "14:00", Day: "Tuesday",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if entry.UserID != "u-student" {
		t.Errorf("Entry owner = %q, want u-student", entry.UserID)
	}

	updated, err := svc.Update(ctx, "u-student", entry.ID, &dto.TimetableEntryRequest{
		Subject: "Compilers", Time: "15:00", Day: "Tuesday",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Time != "15:00" {
		t.Errorf("Time = %q after update, want 15:00", updated.Time)
	}

	if err := svc.Delete(ctx, "u-student", entry.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	mine, err := svc.ListByUser(ctx, "u-student")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("Got %d entries after delete, want 1", len(mine))
	}
}

func TestTimetableOwnershipChecks(t *testing.T) {
	ctx := context.Background()
	svc := NewTimetableService(testCollection(t, store.KeyTimetable, timetableFixture()), zerolog.Nop())

	req := &dto.TimetableEntryRequest{Subject: "S", Time: "10:00", Day: "Friday"}

	if _, err := svc.Update(ctx, "u-student", "t2", req); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Editing another user's entry got %v, want ErrPermissionDenied", err)
	}
	if err := svc.Delete(ctx, "u-student", "t2"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Deleting another user's entry got %v, want ErrPermissionDenied", err)
	}
	if _, err := svc.Update(ctx, "u-student", "missing", req); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("Editing a missing entry got %v, want ErrResourceNotFound", err)
	}
}
