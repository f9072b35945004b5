package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-support/internal/domain"
	"github.com/spec-kit/storefront-support/internal/events"
	"github.com/spec-kit/storefront-support/internal/repository"
	apperrors "github.com/spec-kit/storefront-support/pkg/util"
)

// SupplierService handles department-side complaint workflows.
type SupplierService struct {
	complaints repository.ComplaintRepository
	responses  repository.ComplaintResponseRepository
	queue      repository.QueueRepository
	stores     repository.StoreRepository
	windows    repository.DeliveryWindowRepository
	dispatcher events.Dispatcher
}

// SupplierDependencies bundles repositories for the supplier service.
type SupplierDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	ResponseRepo  repository.ComplaintResponseRepository
	QueueRepo     repository.QueueRepository
	StoreRepo     repository.StoreRepository
	WindowRepo    repository.DeliveryWindowRepository
	Dispatcher    events.Dispatcher
}

// StoreDetails carries the supplier view of a store.
type StoreDetails struct {
	StoreID string
	Hours   *domain.StoreHours
	Windows []domain.DeliveryWindow
}

// NewSupplierService constructs the service.
func NewSupplierService(deps SupplierDependencies) *SupplierService {
	return &SupplierService{
		complaints: deps.ComplaintRepo,
		responses:  deps.ResponseRepo,
		queue:      deps.QueueRepo,
		stores:     deps.StoreRepo,
		windows:    deps.WindowRepo,
		dispatcher: deps.Dispatcher,
	}
}

// ListByDepartment returns complaints routed to a department.
func (s *SupplierService) ListByDepartment(ctx context.Context, department string) ([]domain.Complaint, error) {
	return s.complaints.ListByDepartment(ctx, department)
}

// Respond appends a supplier reply and moves the complaint to in-progress.
// The original flow issues both writes without checking the complaint exists;
// an unknown complaint_id simply leaves the status update a no-op.
func (s *SupplierService) Respond(ctx context.Context, complaintID, message string) (*domain.Complaint, error) {
	response := &domain.ComplaintResponse{
		ComplaintID:  complaintID,
		RespondedBy:  "supplier",
		ResponseType: "reply",
		Message:      message,
	}
	if err := s.responses.Create(ctx, response); err != nil {
		return nil, err
	}
	if err := s.complaints.UpdateStatus(ctx, complaintID, domain.ComplaintStatusInProgress); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventComplaintResponded,
		Payload: events.ComplaintRespondedPayload{
			ComplaintID: complaintID,
			RespondedBy: response.RespondedBy,
		},
	})
	return &domain.Complaint{ID: complaintID, Status: domain.ComplaintStatusInProgress}, nil
}

// Escalate hands a complaint over to the live-agent queue with the supplier's
// reason. Shares the transactional enqueue with customer escalation.
func (s *SupplierService) Escalate(ctx context.Context, complaintID, reason string) (*domain.QueueTicket, error) {
	ticket, err := s.queue.EnqueueEscalation(ctx, complaintID, reason)
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
			Reason:      reason,
		},
	})
	return ticket, nil
}

// GetStoreDetails returns store hours plus delivery windows for a supplier.
func (s *SupplierService) GetStoreDetails(ctx context.Context, storeID string) (*StoreDetails, error) {
	hours, err := s.stores.GetHours(ctx, storeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundMessage("Store not found")
		}
		return nil, err
	}
	windows, err := s.windows.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &StoreDetails{StoreID: storeID, Hours: hours, Windows: windows}, nil
}

func (s *SupplierService) publishEvent(ctx context.Context, event events.Event) {
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
