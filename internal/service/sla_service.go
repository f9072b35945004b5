package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/storefront-support/internal/domain"
	"github.com/spec-kit/storefront-support/internal/repository"
	apperrors "github.com/spec-kit/storefront-support/pkg/util"
)

// SLAService manages the issue-type → department routing rules.
type SLAService struct {
	rules repository.SLARuleRepository
}

// NewSLAService constructs the service.
func NewSLAService(rules repository.SLARuleRepository) *SLAService {
	return &SLAService{rules: rules}
}

// CreateRule persists a new routing rule. Issue types are unique; a second
// rule for the same issue type is rejected.
func (s *SLAService) CreateRule(ctx context.Context, issueType, department string, slaHours int) (*domain.SLARule, error) {
	issueType = strings.TrimSpace(issueType)
	department = strings.TrimSpace(department)
	if issueType == "" || department == "" {
		return nil, apperrors.NewValidationError("issue_type and department required", nil)
	}
	if slaHours <= 0 {
		return nil, apperrors.NewValidationError("sla_hours must be positive", nil)
	}

	rule := &domain.SLARule{
		IssueType:  issueType,
		Department: department,
		SLAHours:   slaHours,
	}
	if err := s.rules.Create(ctx, rule); err != nil {
		if errors.Is(err, repository.ErrDuplicateIssueType) {
			return nil, apperrors.NewConflict("sla rule already exists for issue type", map[string]any{"issue_type": issueType})
		}
		return nil, err
	}
	return rule, nil
}

// ListRules returns all routing rules.
func (s *SLAService) ListRules(ctx context.Context) ([]domain.SLARule, error) {
	return s.rules.List(ctx)
}
