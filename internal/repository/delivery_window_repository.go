package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-support/internal/domain"
)

// DeliveryWindowRepository manages supplier delivery slots.
type DeliveryWindowRepository interface {
	Create(ctx context.Context, window *domain.DeliveryWindow) error
	ListByStore(ctx context.Context, storeID string) ([]domain.DeliveryWindow, error)
}

type deliveryWindowRepository struct {
	pool *pgxpool.Pool
}

// NewDeliveryWindowRepository instantiates repository.
func NewDeliveryWindowRepository(pool *pgxpool.Pool) DeliveryWindowRepository {
	return &deliveryWindowRepository{pool: pool}
}

func (r *deliveryWindowRepository) Create(ctx context.Context, window *domain.DeliveryWindow) error {
	const query = `
        INSERT INTO delivery_windows (store_id, opening_time, closing_time, note)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		window.StoreID,
		window.OpeningTime,
		window.ClosingTime,
		window.Note,
	).Scan(&window.ID, &window.CreatedAt)
}

func (r *deliveryWindowRepository) ListByStore(ctx context.Context, storeID string) ([]domain.DeliveryWindow, error) {
	const query = `
        SELECT id, store_id, opening_time, closing_time, note, created_at
        FROM delivery_windows WHERE store_id=$1`
	rows, err := r.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DeliveryWindow
	for rows.Next() {
		var window domain.DeliveryWindow
		if err := rows.Scan(
			&window.ID,
			&window.StoreID,
			&window.OpeningTime,
			&window.ClosingTime,
			&window.Note,
			&window.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, window)
	}
	return result, rows.Err()
}
