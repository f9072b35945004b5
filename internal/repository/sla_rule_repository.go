package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-support/internal/domain"
)

// ErrDuplicateIssueType flags a second rule for an already-mapped issue type.
var ErrDuplicateIssueType = errors.New("sla rule already exists for issue type")

const uniqueViolationCode = "23505"

// SLARuleRepository manages SLA routing rules.
type SLARuleRepository interface {
	Create(ctx context.Context, rule *domain.SLARule) error
	FindByIssueType(ctx context.Context, issueType string) (*domain.SLARule, error)
	List(ctx context.Context) ([]domain.SLARule, error)
}

type slaRuleRepository struct {
	pool *pgxpool.Pool
}

// NewSLARuleRepository instantiates repository.
func NewSLARuleRepository(pool *pgxpool.Pool) SLARuleRepository {
	return &slaRuleRepository{pool: pool}
}

func (r *slaRuleRepository) Create(ctx context.Context, rule *domain.SLARule) error {
	const query = `
        INSERT INTO sla_rules (issue_type, department, sla_hours)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		rule.IssueType,
		rule.Department,
		rule.SLAHours,
	).Scan(&rule.ID, &rule.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateIssueType
		}
		return err
	}
	return nil
}

func (r *slaRuleRepository) FindByIssueType(ctx context.Context, issueType string) (*domain.SLARule, error) {
	const query = `
        SELECT id, issue_type, department, sla_hours, created_at
        FROM sla_rules WHERE issue_type=$1`
	var rule domain.SLARule
	if err := r.pool.QueryRow(ctx, query, issueType).Scan(
		&rule.ID,
		&rule.IssueType,
		&rule.Department,
		&rule.SLAHours,
		&rule.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *slaRuleRepository) List(ctx context.Context) ([]domain.SLARule, error) {
	const query = `
        SELECT id, issue_type, department, sla_hours, created_at
        FROM sla_rules`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SLARule
	for rows.Next() {
		var rule domain.SLARule
		if err := rows.Scan(&rule.ID, &rule.IssueType, &rule.Department, &rule.SLAHours, &rule.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	return result, rows.Err()
}
