package dto

import (
	"time"

	"github.com/spec-kit/storefront-support/internal/domain"
)

// QueueTicketView response for take/close operations.
type QueueTicketView struct {
	TicketID string              `json:"ticket_id"`
	Status   domain.TicketStatus `json:"status"`
}

// QueueEntryView is a waiting ticket joined with its complaint.
type QueueEntryView struct {
	ID          string              `json:"id"`
	ComplaintID string              `json:"complaint_id"`
	UserID      string              `json:"user_id"`
	Reason      string              `json:"reason"`
	Status      domain.TicketStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	Complaint   ComplaintView       `json:"complaint"`
}
