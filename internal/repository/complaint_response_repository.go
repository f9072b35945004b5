package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-support/internal/domain"
)

// ComplaintResponseRepository appends supplier reply records.
type ComplaintResponseRepository interface {
	Create(ctx context.Context, response *domain.ComplaintResponse) error
}

type complaintResponseRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintResponseRepository instantiates repository.
func NewComplaintResponseRepository(pool *pgxpool.Pool) ComplaintResponseRepository {
	return &complaintResponseRepository{pool: pool}
}

func (r *complaintResponseRepository) Create(ctx context.Context, response *domain.ComplaintResponse) error {
	const query = `
        INSERT INTO complaint_responses (complaint_id, responded_by, response_type, message)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		response.ComplaintID,
		response.RespondedBy,
		response.ResponseType,
		response.Message,
	).Scan(&response.ID, &response.CreatedAt)
}
