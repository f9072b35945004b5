package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-support/internal/domain"
	"github.com/spec-kit/storefront-support/internal/events"
	apperrors "github.com/spec-kit/storefront-support/pkg/util"
)

func newComplaintService(complaints *fakeComplaintRepo, rules *fakeSLARuleRepo, queue *fakeQueueRepo, dispatcher *recordingDispatcher) *ComplaintService {
	return NewComplaintService(ComplaintDependencies{
		ComplaintRepo: complaints,
		SLARuleRepo:   rules,
		QueueRepo:     queue,
		Dispatcher:    dispatcher,
	})
}

func TestComplaintCreateRouting(t *testing.T) {
	tests := []struct {
		name           string
		rules          map[string]domain.SLARule
		issueType      string
		wantDepartment string
		wantSLAHours   int
	}{
		{
			name: "matching rule",
			rules: map[string]domain.SLARule{
				"late_delivery": {IssueType: "late_delivery", Department: "logistics", SLAHours: 12},
			},
			issueType:      "late_delivery",
			wantDepartment: "logistics",
			wantSLAHours:   12,
		},
		{
			name:           "no rule falls back to defaults",
			rules:          map[string]domain.SLARule{},
			issueType:      "unknown_issue",
			wantDepartment: "general_support",
			wantSLAHours:   24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			complaints := &fakeComplaintRepo{}
			dispatcher := &recordingDispatcher{}
			svc := newComplaintService(complaints, &fakeSLARuleRepo{rules: tt.rules}, &fakeQueueRepo{}, dispatcher)

			complaint, err := svc.Create(context.Background(), ComplaintCreateInput{
				UserID:      "user-1",
				StoreID:     "store-1",
				IssueType:   tt.issueType,
				Priority:    "high",
				Description: "  order arrived two days late  ",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if complaint.AssignedDepartment != tt.wantDepartment {
				t.Errorf("department = %q, want %q", complaint.AssignedDepartment, tt.wantDepartment)
			}
			if complaint.SLAHours != tt.wantSLAHours {
				t.Errorf("sla hours = %d, want %d", complaint.SLAHours, tt.wantSLAHours)
			}
			if complaint.Status != domain.ComplaintStatusPending {
				t.Errorf("status = %q, want pending", complaint.Status)
			}
			if complaint.Description != "order arrived two days late" {
				t.Errorf("description not trimmed: %q", complaint.Description)
			}

			published := dispatcher.events()
			if len(published) != 1 || published[0].Type != events.EventComplaintCreated {
				t.Fatalf("expected one ComplaintCreated event, got %+v", published)
			}
		})
	}
}

func TestComplaintCreateRepoError(t *testing.T) {
	complaints := &fakeComplaintRepo{createErr: errors.New("insert failed")}
	dispatcher := &recordingDispatcher{}
	svc := newComplaintService(complaints, &fakeSLARuleRepo{}, &fakeQueueRepo{}, dispatcher)

	_, err := svc.Create(context.Background(), ComplaintCreateInput{
		UserID: "user-1", StoreID: "store-1", IssueType: "x", Priority: "low", Description: "d",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(dispatcher.events()) != 0 {
		t.Fatal("no event should be published on failure")
	}
}

func TestComplaintGetNotFound(t *testing.T) {
	svc := newComplaintService(&fakeComplaintRepo{}, &fakeSLARuleRepo{}, &fakeQueueRepo{}, &recordingDispatcher{})

	_, err := svc.Get(context.Background(), "missing")

	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	if domainErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", domainErr.HTTPStatus)
	}
	if domainErr.Message != "Complaint not found" {
		t.Fatalf("message = %q", domainErr.Message)
	}
}

func TestComplaintEscalate(t *testing.T) {
	queue := &fakeQueueRepo{}
	dispatcher := &recordingDispatcher{}
	svc := newComplaintService(&fakeComplaintRepo{}, &fakeSLARuleRepo{}, queue, dispatcher)

	ticket, err := svc.Escalate(context.Background(), "complaint-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.Status != domain.TicketStatusWaiting {
		t.Errorf("ticket status = %q, want waiting", ticket.Status)
	}
	if queue.enqueuedReason != domain.EscalationReason {
		t.Errorf("reason = %q, want %q", queue.enqueuedReason, domain.EscalationReason)
	}

	published := dispatcher.events()
	if len(published) != 1 || published[0].Type != events.EventComplaintEscalated {
		t.Fatalf("expected one ComplaintEscalated event, got %+v", published)
	}
}

func TestComplaintEscalateMissingComplaint(t *testing.T) {
	queue := &fakeQueueRepo{enqueueErr: pgx.ErrNoRows}
	svc := newComplaintService(&fakeComplaintRepo{}, &fakeSLARuleRepo{}, queue, &recordingDispatcher{})

	_, err := svc.Escalate(context.Background(), "missing")

	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	if domainErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", domainErr.HTTPStatus)
	}
}
