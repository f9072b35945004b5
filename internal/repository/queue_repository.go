package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-support/internal/domain"
)

// ErrTicketNotWaiting flags a take attempt on a ticket no longer waiting.
var ErrTicketNotWaiting = errors.New("ticket is not waiting")

// QueueRepository manages the live-agent queue.
type QueueRepository interface {
	// EnqueueEscalation marks the complaint escalated and inserts a waiting
	// ticket in a single transaction. Returns pgx.ErrNoRows when the
	// complaint does not exist.
	EnqueueEscalation(ctx context.Context, complaintID, reason string) (*domain.QueueTicket, error)
	ListWaiting(ctx context.Context) ([]domain.QueueEntry, error)
	// Take transitions waiting→connected with a conditional update, so two
	// agents racing on the same ticket cannot both succeed.
	Take(ctx context.Context, ticketID string) error
	// Close transitions any existing ticket to closed; closing an already
	// closed ticket succeeds.
	Close(ctx context.Context, ticketID string) error
}

type queueRepository struct {
	pool *pgxpool.Pool
}

// NewQueueRepository instantiates repository.
func NewQueueRepository(pool *pgxpool.Pool) QueueRepository {
	return &queueRepository{pool: pool}
}

func (r *queueRepository) EnqueueEscalation(ctx context.Context, complaintID, reason string) (*domain.QueueTicket, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var userID string
	if err := tx.QueryRow(ctx, `SELECT user_id FROM complaints WHERE id=$1`, complaintID).Scan(&userID); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE complaints SET status=$1, updated_at=NOW() WHERE id=$2`,
		domain.ComplaintStatusEscalated, complaintID,
	); err != nil {
		return nil, err
	}

	ticket := &domain.QueueTicket{
		ComplaintID: complaintID,
		UserID:      userID,
		Reason:      reason,
		Status:      domain.TicketStatusWaiting,
	}
	const insert = `
        INSERT INTO live_agent_queue (complaint_id, user_id, reason, status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, insert,
		ticket.ComplaintID,
		ticket.UserID,
		ticket.Reason,
		ticket.Status,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (r *queueRepository) ListWaiting(ctx context.Context) ([]domain.QueueEntry, error) {
	const query = `
        SELECT q.id, q.complaint_id, q.user_id, q.reason, q.status, q.created_at, q.updated_at,
               c.id, c.user_id, c.store_id, c.issue_type, c.priority, c.description,
               c.status, c.assigned_department, c.sla_hours, c.created_at, c.updated_at
        FROM live_agent_queue q
        JOIN complaints c ON c.id = q.complaint_id
        WHERE q.status=$1
        ORDER BY q.created_at ASC`
	rows, err := r.pool.Query(ctx, query, domain.TicketStatusWaiting)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.QueueEntry
	for rows.Next() {
		var entry domain.QueueEntry
		if err := rows.Scan(
			&entry.Ticket.ID,
			&entry.Ticket.ComplaintID,
			&entry.Ticket.UserID,
			&entry.Ticket.Reason,
			&entry.Ticket.Status,
			&entry.Ticket.CreatedAt,
			&entry.Ticket.UpdatedAt,
			&entry.Complaint.ID,
			&entry.Complaint.UserID,
			&entry.Complaint.StoreID,
			&entry.Complaint.IssueType,
			&entry.Complaint.Priority,
			&entry.Complaint.Description,
			&entry.Complaint.Status,
			&entry.Complaint.AssignedDepartment,
			&entry.Complaint.SLAHours,
			&entry.Complaint.CreatedAt,
			&entry.Complaint.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *queueRepository) Take(ctx context.Context, ticketID string) error {
	const query = `
        UPDATE live_agent_queue SET status=$1, updated_at=NOW()
        WHERE id=$2 AND status=$3`
	cmd, err := r.pool.Exec(ctx, query, domain.TicketStatusConnected, ticketID, domain.TicketStatusWaiting)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	var status domain.TicketStatus
	err = r.pool.QueryRow(ctx, `SELECT status FROM live_agent_queue WHERE id=$1`, ticketID).Scan(&status)
	if err != nil {
		return err
	}
	return ErrTicketNotWaiting
}

func (r *queueRepository) Close(ctx context.Context, ticketID string) error {
	const query = `UPDATE live_agent_queue SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, domain.TicketStatusClosed, ticketID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
