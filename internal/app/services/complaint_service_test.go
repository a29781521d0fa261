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

func complaintFixture() []models.Complaint {
	return []models.Complaint{
		{ID: "c1", Title: "Water cooler broken", Category: models.ComplaintWater, Status: models.ComplaintPending, UserID: "u-student"},
		{ID: "c2", Title: "WiFi down in hostel", Category: models.ComplaintInternet, Status: models.ComplaintInProgress, UserID: "other"},
	}
}

func TestCreateComplaint(t *testing.T) {
	ctx := context.Background()
	svc := NewComplaintService(testCollection(t, store.KeyComplaints, complaintFixture()), zerolog.Nop())

	complaint, err := svc.Create(ctx, student, &dto.CreateComplaintRequest{
		Title:       "Leaky faucet",
		Description: "Second floor washroom",
		Category:    "water",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if complaint.Status != models.ComplaintPending {
		t.Errorf("New complaint status = %q, want pending", complaint.Status)
	}
	if complaint.ID == "" || complaint.ID == "c1" {
		t.Errorf("Expected a fresh id, got %q", complaint.ID)
	}
	if complaint.UserID != student.ID || complaint.UserName != student.Name {
		t.Errorf("Complaint not attributed to filer: %+v", complaint)
	}

	// New complaints appear first
	all, err := svc.List(ctx, "", "", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 || all[0].ID != complaint.ID {
		t.Errorf("New complaint is not first: %+v", all)
	}
}

func TestCreateComplaintRoleGate(t *testing.T) {
	ctx := context.Background()
	svc := NewComplaintService(testCollection(t, store.KeyComplaints, complaintFixture()), zerolog.Nop())

	req := &dto.CreateComplaintRequest{Title: "T", Description: "D", Category: "other"}
	for _, actor := range []*models.User{staff, admin} {
		if _, err := svc.Create(ctx, actor, req); !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("%s filing a complaint got %v, want ErrPermissionDenied", actor.Role, err)
		}
	}
}

func TestUpdateComplaintStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   *models.User
		id      string
		status  models.ComplaintStatus
		wantErr error
	}{
		{name: "staff resolves", actor: staff, id: "c1", status: models.ComplaintResolved},
		{name: "admin moves to in-progress", actor: admin, id: "c1", status: models.ComplaintInProgress},
		{name: "student cannot transition", actor: student, id: "c1", status: models.ComplaintResolved, wantErr: apperrors.ErrPermissionDenied},
		{name: "unknown status", actor: staff, id: "c1", status: "done", wantErr: apperrors.ErrValidationFailed},
		{name: "unknown complaint", actor: staff, id: "missing", status: models.ComplaintResolved, wantErr: apperrors.ErrResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewComplaintService(testCollection(t, store.KeyComplaints, complaintFixture()), zerolog.Nop())

			updated, err := svc.UpdateStatus(ctx, tt.actor, tt.id, tt.status)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateStatus failed: %v", err)
			}
			if updated.Status != tt.status {
				t.Errorf("Status = %q, want %q", updated.Status, tt.status)
			}
			// Everything but the status is untouched
			if updated.Title != "Water cooler broken" {
				t.Errorf("Transition modified other fields: %+v", updated)
			}
		})
	}
}

func TestListComplaintsFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewComplaintService(testCollection(t, store.KeyComplaints, complaintFixture()), zerolog.Nop())

	tests := []struct {
		name     string
		search   string
		category string
		status   string
		wantIDs  []string
	}{
		{name: "no filters", wantIDs: []string{"c1", "c2"}},
		{name: "all wildcards", category: "all", status: "all", wantIDs: []string{"c1", "c2"}},
		{name: "by category", category: "water", wantIDs: []string{"c1"}},
		{name: "by status", status: "in-progress", wantIDs: []string{"c2"}},
		{name: "search is case-insensitive", search: "WIFI", wantIDs: []string{"c2"}},
		{name: "filters are ANDed", search: "wifi", category: "water", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(ctx, tt.search, tt.category, tt.status)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Got %d complaints, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Position %d is %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestListComplaintsByUser(t *testing.T) {
	ctx := context.Background()
	svc := NewComplaintService(testCollection(t, store.KeyComplaints, complaintFixture()), zerolog.Nop())

	mine, err := svc.ListByUser(ctx, student.ID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "c1" {
		t.Errorf("Got %+v, want only c1", mine)
	}
}
