package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-support/internal/domain"
	"github.com/spec-kit/storefront-support/internal/events"
	"github.com/spec-kit/storefront-support/internal/repository"
	apperrors "github.com/spec-kit/storefront-support/pkg/util"
)

// ComplaintService coordinates the complaint lifecycle.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	rules      repository.SLARuleRepository
	queue      repository.QueueRepository
	dispatcher events.Dispatcher
}

// ComplaintDependencies bundles repositories for the complaint service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	SLARuleRepo   repository.SLARuleRepository
	QueueRepo     repository.QueueRepository
	Dispatcher    events.Dispatcher
}

// ComplaintCreateInput describes complaint creation payload.
type ComplaintCreateInput struct {
	UserID      string
	StoreID     string
	IssueType   string
	Priority    string
	Description string
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		rules:      deps.SLARuleRepo,
		queue:      deps.QueueRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create routes a new complaint to a department via the SLA rules and
// persists it with status pending. Unmatched issue types fall back to the
// general support department with the default response budget.
func (s *ComplaintService) Create(ctx context.Context, input ComplaintCreateInput) (*domain.Complaint, error) {
	department := domain.DefaultDepartment
	slaHours := domain.DefaultSLAHours

	rule, err := s.rules.FindByIssueType(ctx, input.IssueType)
	switch {
	case err == nil:
		department = rule.Department
		slaHours = rule.SLAHours
	case errors.Is(err, pgx.ErrNoRows):
		// keep defaults
	default:
		return nil, err
	}

	complaint := &domain.Complaint{
		UserID:             input.UserID,
		StoreID:            input.StoreID,
		IssueType:          input.IssueType,
		Priority:           input.Priority,
		Description:        strings.TrimSpace(input.Description),
		Status:             domain.ComplaintStatusPending,
		AssignedDepartment: department,
		SLAHours:           slaHours,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventComplaintCreated,
		Payload: events.ComplaintCreatedPayload{
			ComplaintID: complaint.ID,
			IssueType:   complaint.IssueType,
			Department:  complaint.AssignedDepartment,
			SLAHours:    complaint.SLAHours,
		},
	})
	return complaint, nil
}

// Get fetches a single complaint.
func (s *ComplaintService) Get(ctx context.Context, id string) (*domain.Complaint, error) {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundMessage("Complaint not found")
		}
		return nil, err
	}
	return complaint, nil
}

// List returns all complaints.
func (s *ComplaintService) List(ctx context.Context) ([]domain.Complaint, error) {
	return s.complaints.List(ctx)
}

// Escalate promotes a complaint into the live-agent queue. The status update
// and ticket insert happen in one transaction, so a complaint is never left
// escalated without a ticket.
func (s *ComplaintService) Escalate(ctx context.Context, complaintID string) (*domain.QueueTicket, error) {
	ticket, err := s.queue.EnqueueEscalation(ctx, complaintID, domain.EscalationReason)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundMessage("Complaint not found")
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventComplaintEscalated,
		Payload: events.ComplaintEscalatedPayload{
			ComplaintID: complaintID,
			TicketID:    ticket.ID,
			Reason:      ticket.Reason,
		},
	})
	return ticket, nil
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
