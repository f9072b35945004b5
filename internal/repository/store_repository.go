package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-support/internal/domain"
)

const storeColumns = `id, name, address, phone, opening_time, closing_time, map_url,
               services, is_verified, latitude, longitude, created_at, updated_at`

// StoreRepository encapsulates store persistence.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	GetHours(ctx context.Context, id string) (*domain.StoreHours, error)
	List(ctx context.Context) ([]domain.Store, error)
	FilterByService(ctx context.Context, service string) ([]domain.Store, error)
}

type storeRepository struct {
	pool *pgxpool.Pool
}

// NewStoreRepository instantiates repository.
func NewStoreRepository(pool *pgxpool.Pool) StoreRepository {
	return &storeRepository{pool: pool}
}

func (r *storeRepository) Create(ctx context.Context, store *domain.Store) error {
	const query = `
        INSERT INTO stores (name, address, phone, opening_time, closing_time, map_url, services, is_verified, latitude, longitude)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		store.Name,
		store.Address,
		store.Phone,
		store.OpeningTime,
		store.ClosingTime,
		store.MapURL,
		store.Services,
		store.IsVerified,
		store.Latitude,
		store.Longitude,
	).Scan(&store.ID, &store.CreatedAt, &store.UpdatedAt)
}

func (r *storeRepository) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	const query = `SELECT ` + storeColumns + ` FROM stores WHERE id=$1`
	var store domain.Store
	if err := r.pool.QueryRow(ctx, query, id).Scan(storeFields(&store)...); err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) GetHours(ctx context.Context, id string) (*domain.StoreHours, error) {
	const query = `SELECT id, name, opening_time, closing_time FROM stores WHERE id=$1`
	var hours domain.StoreHours
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&hours.ID,
		&hours.Name,
		&hours.OpeningTime,
		&hours.ClosingTime,
	); err != nil {
		return nil, err
	}
	return &hours, nil
}

func (r *storeRepository) List(ctx context.Context) ([]domain.Store, error) {
	const query = `SELECT ` + storeColumns + ` FROM stores`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStores(rows)
}

func (r *storeRepository) FilterByService(ctx context.Context, service string) ([]domain.Store, error) {
	const query = `SELECT ` + storeColumns + `
        FROM stores WHERE services @> ARRAY[$1]::text[] AND is_verified = TRUE`
	rows, err := r.pool.Query(ctx, query, service)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStores(rows)
}

func storeFields(store *domain.Store) []any {
	return []any{
		&store.ID,
		&store.Name,
		&store.Address,
		&store.Phone,
		&store.OpeningTime,
		&store.ClosingTime,
		&store.MapURL,
		&store.Services,
		&store.IsVerified,
		&store.Latitude,
		&store.Longitude,
		&store.CreatedAt,
		&store.UpdatedAt,
	}
}

func scanStores(rows pgx.Rows) ([]domain.Store, error) {
	var result []domain.Store
	for rows.Next() {
		var store domain.Store
		if err := rows.Scan(storeFields(&store)...); err != nil {
			return nil, err
		}
		result = append(result, store)
	}
	return result, rows.Err()
}
