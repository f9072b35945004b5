package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-support/internal/domain"
)

// updatableStoreColumns whitelists fields a pending update may touch.
var updatableStoreColumns = map[string]bool{
	"name":         true,
	"address":      true,
	"phone":        true,
	"opening_time": true,
	"closing_time": true,
	"map_url":      true,
	"services":     true,
}

// StoreUpdateRepository manages pending store changes.
type StoreUpdateRepository interface {
	Create(ctx context.Context, update *domain.StoreUpdate) error
	// Approve applies the pending update onto the store, marks the store
	// verified and the update approved, all in one transaction. Returns the
	// applied field map, or pgx.ErrNoRows when the update does not exist.
	Approve(ctx context.Context, storeID, updateID string) (map[string]any, error)
}

type storeUpdateRepository struct {
	pool *pgxpool.Pool
}

// NewStoreUpdateRepository instantiates repository.
func NewStoreUpdateRepository(pool *pgxpool.Pool) StoreUpdateRepository {
	return &storeUpdateRepository{pool: pool}
}

func (r *storeUpdateRepository) Create(ctx context.Context, update *domain.StoreUpdate) error {
	const query = `
        INSERT INTO store_updates (store_id, proposed_data)
        VALUES ($1,$2)
        RETURNING id, approved, created_at`
	return r.pool.QueryRow(ctx, query,
		update.StoreID,
		update.ProposedData,
	).Scan(&update.ID, &update.Approved, &update.CreatedAt)
}

func (r *storeUpdateRepository) Approve(ctx context.Context, storeID, updateID string) (map[string]any, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const fetch = `SELECT proposed_data FROM store_updates WHERE id=$1 AND store_id=$2`
	var proposed map[string]any
	if err := tx.QueryRow(ctx, fetch, updateID, storeID).Scan(&proposed); err != nil {
		return nil, err
	}

	sets := []string{"is_verified=TRUE", "updated_at=NOW()"}
	args := []any{}
	for column, value := range proposed {
		if !updatableStoreColumns[column] {
			continue
		}
		if column == "services" {
			value = toTextArray(value)
		}
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	args = append(args, storeID)
	query := fmt.Sprintf(`UPDATE stores SET %s WHERE id=$%d`, strings.Join(sets, ", "), len(args))
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `UPDATE store_updates SET approved=TRUE WHERE id=$1`, updateID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return proposed, nil
}

// toTextArray coerces a JSONB-decoded services list into []string so it can
// bind to the text[] column.
func toTextArray(value any) any {
	items, ok := value.([]any)
	if !ok {
		return value
	}
	services := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			services = append(services, s)
		}
	}
	return services
}
