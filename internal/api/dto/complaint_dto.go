package dto

import (
	"time"

	"github.com/spec-kit/storefront-support/internal/domain"
)

// ComplaintCreateRequest payload.
type ComplaintCreateRequest struct {
	UserID      string `json:"user_id"`
	StoreID     string `json:"store_id"`
	IssueType   string `json:"issue_type"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

// ComplaintView response.
type ComplaintView struct {
	ID                 string                 `json:"id"`
	UserID             string                 `json:"user_id"`
	StoreID            string                 `json:"store_id"`
	IssueType          string                 `json:"issue_type"`
	Priority           string                 `json:"priority"`
	Description        string                 `json:"description"`
	Status             domain.ComplaintStatus `json:"status"`
	AssignedDepartment string                 `json:"assigned_department"`
	SLAHours           int                    `json:"sla_hours"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

// SupplierRespondRequest payload.
type SupplierRespondRequest struct {
	Message string `json:"message"`
}

// EscalationRequest payload.
type EscalationRequest struct {
	Reason string `json:"reason"`
}
