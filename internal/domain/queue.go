package domain

import "time"

// TicketStatus enumerates live-agent queue states.
type TicketStatus string

const (
	TicketStatusWaiting   TicketStatus = "waiting"
	TicketStatusConnected TicketStatus = "connected"
	TicketStatusClosed    TicketStatus = "closed"
)

// EscalationReason is recorded when a customer escalates their own complaint.
const EscalationReason = "Customer escalation request"

// QueueTicket represents a customer awaiting a live agent.
type QueueTicket struct {
	ID          string
	ComplaintID string
	UserID      string
	Reason      string
	Status      TicketStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// QueueEntry joins a waiting ticket with its originating complaint.
type QueueEntry struct {
	Ticket    QueueTicket
	Complaint Complaint
}
