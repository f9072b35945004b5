package domain

import "time"

// Feedback is an append-only user submission with no lifecycle.
type Feedback struct {
	ID        string
	UserID    *string
	Category  string
	Message   string
	CreatedAt time.Time
}
