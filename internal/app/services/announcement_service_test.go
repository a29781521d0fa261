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

func announcementFixture() []models.Announcement {
	return []models.Announcement{
		{ID: "a1", Title: "Midterm schedule", Body: "Exams start May 5", Category: models.AnnouncementExam},
		{ID: "a2", Title: "Holi celebration", Body: "Campus grounds", Category: models.AnnouncementEvent},
	}
}

func TestCreateAnnouncement(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		actor    *models.User
		category string
		wantErr  error
	}{
		{name: "staff posts", actor: staff, category: "general"},
		{name: "admin posts", actor: admin, category: "holiday"},
		{name: "student cannot post", actor: student, category: "general", wantErr: apperrors.ErrPermissionDenied},
		{name: "unknown category", actor: staff, category: "party", wantErr: apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAnnouncementService(testCollection(t, store.KeyAnnouncements, announcementFixture()), zerolog.Nop())

			created, err := svc.Create(ctx, tt.actor, &dto.CreateAnnouncementRequest{
				Title:    "Notice",
				Body:     "Details",
				Category: tt.category,
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
			if created.Author != tt.actor.Name || created.AuthorRole != tt.actor.Role {
				t.Errorf("Author attribution wrong: %+v", created)
			}

			// Newest first
			all, err := svc.List(ctx, "", "")
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if all[0].ID != created.ID {
				t.Error("New announcement is not first in the list")
			}
		})
	}
}

func TestListAnnouncements(t *testing.T) {
	ctx := context.Background()
	svc := NewAnnouncementService(testCollection(t, store.KeyAnnouncements, announcementFixture()), zerolog.Nop())

	tests := []struct {
		name     string
		search   string
		category string
		wantIDs  []string
	}{
		{name: "everything", wantIDs: []string{"a1", "a2"}},
		{name: "by category", category: "exam", wantIDs: []string{"a1"}},
		{name: "search over body", search: "grounds", wantIDs: []string{"a2"}},
		{name: "search and category ANDed", search: "holi", category: "exam", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(ctx, tt.search, tt.category)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Got %d announcements, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Position %d is %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}
