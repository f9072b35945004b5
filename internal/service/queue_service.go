package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-support/internal/domain"
	"github.com/spec-kit/storefront-support/internal/repository"
	apperrors "github.com/spec-kit/storefront-support/pkg/util"
)

// QueueService manages tickets awaiting a live agent.
type QueueService struct {
	queue repository.QueueRepository
}

// NewQueueService constructs the service.
func NewQueueService(queue repository.QueueRepository) *QueueService {
	return &QueueService{queue: queue}
}

// ListWaiting returns waiting tickets joined with their complaints.
func (s *QueueService) ListWaiting(ctx context.Context) ([]domain.QueueEntry, error) {
	return s.queue.ListWaiting(ctx)
}

// Take claims a waiting ticket for an agent. Only a ticket that is still
// waiting can be taken; a connected or closed ticket yields a conflict.
func (s *QueueService) Take(ctx context.Context, ticketID string) (*domain.QueueTicket, error) {
	if err := s.queue.Take(ctx, ticketID); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, apperrors.NewNotFoundMessage("Ticket not found or already taken")
		case errors.Is(err, repository.ErrTicketNotWaiting):
			return nil, apperrors.NewConflict("Ticket not found or already taken", nil)
		default:
			return nil, err
		}
	}
	return &domain.QueueTicket{ID: ticketID, Status: domain.TicketStatusConnected}, nil
}

// Close ends a ticket. Closing is idempotent as long as the ticket exists.
func (s *QueueService) Close(ctx context.Context, ticketID string) (*domain.QueueTicket, error) {
	if err := s.queue.Close(ctx, ticketID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundMessage("Ticket not found")
		}
		return nil, err
	}
	return &domain.QueueTicket{ID: ticketID, Status: domain.TicketStatusClosed}, nil
}
