package dto

import "time"

// NotificationResponse view.
type NotificationResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
