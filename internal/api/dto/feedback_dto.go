package dto

import "time"

// FeedbackRequest payload.
type FeedbackRequest struct {
	UserID   *string `json:"user_id"`
	Category string  `json:"category"`
	Message  string  `json:"message"`
}

// FeedbackResponse view.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
