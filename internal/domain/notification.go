package domain

import "time"

// NotificationTypeHoursUpdate marks hours-change notifications.
const NotificationTypeHoursUpdate = "hours_update"

// Notification is an append-only side-channel record of store events.
type Notification struct {
	ID        string
	StoreID   string
	Type      string
	Message   string
	CreatedAt time.Time
}
