package dto

import "time"

// SLARuleRequest payload.
type SLARuleRequest struct {
	IssueType  string `json:"issue_type"`
	Department string `json:"department"`
	SLAHours   int    `json:"sla_hours"`
}

// SLARuleResponse view.
type SLARuleResponse struct {
	ID         string    `json:"id"`
	IssueType  string    `json:"issue_type"`
	Department string    `json:"department"`
	SLAHours   int       `json:"sla_hours"`
	CreatedAt  time.Time `json:"created_at"`
}
