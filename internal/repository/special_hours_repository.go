package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-support/internal/domain"
)

// SpecialHoursRepository manages holiday/maintenance hours entries.
type SpecialHoursRepository interface {
	Create(ctx context.Context, entry *domain.SpecialHours) error
	ListByStore(ctx context.Context, storeID string) ([]domain.SpecialHours, error)
}

type specialHoursRepository struct {
	pool *pgxpool.Pool
}

// NewSpecialHoursRepository instantiates repository.
func NewSpecialHoursRepository(pool *pgxpool.Pool) SpecialHoursRepository {
	return &specialHoursRepository{pool: pool}
}

func (r *specialHoursRepository) Create(ctx context.Context, entry *domain.SpecialHours) error {
	const query = `
        INSERT INTO special_hours (store_id, date, opening_time, closing_time, reason)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.StoreID,
		entry.Date,
		entry.OpeningTime,
		entry.ClosingTime,
		entry.Reason,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *specialHoursRepository) ListByStore(ctx context.Context, storeID string) ([]domain.SpecialHours, error) {
	const query = `
        SELECT id, store_id, date, opening_time, closing_time, reason, created_at
        FROM special_hours WHERE store_id=$1 ORDER BY date ASC`
	rows, err := r.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SpecialHours
	for rows.Next() {
		var entry domain.SpecialHours
		if err := rows.Scan(
			&entry.ID,
			&entry.StoreID,
			&entry.Date,
			&entry.OpeningTime,
			&entry.ClosingTime,
			&entry.Reason,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
