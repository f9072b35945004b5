package domain

import "time"

// SLARule maps an issue type to a department and a response-time budget.
type SLARule struct {
	ID         string
	IssueType  string
	Department string
	SLAHours   int
	CreatedAt  time.Time
}
