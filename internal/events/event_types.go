package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventHoursChanged       EventType = "hours_changed"
	EventComplaintCreated   EventType = "complaint_created"
	EventComplaintEscalated EventType = "complaint_escalated"
	EventComplaintResponded EventType = "complaint_responded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// HoursChangedPayload payload.
type HoursChangedPayload struct {
	StoreID string `json:"store_id"`
	Message string `json:"message"`
}

// ComplaintCreatedPayload payload.
type ComplaintCreatedPayload struct {
	ComplaintID string `json:"complaint_id"`
	IssueType   string `json:"issue_type"`
	Department  string `json:"department"`
	SLAHours    int    `json:"sla_hours"`
}

// ComplaintEscalatedPayload payload.
type ComplaintEscalatedPayload struct {
	ComplaintID string `json:"complaint_id"`
	TicketID    string `json:"ticket_id"`
	Reason      string `json:"reason"`
}

// ComplaintRespondedPayload payload.
type ComplaintRespondedPayload struct {
	ComplaintID string `json:"complaint_id"`
	RespondedBy string `json:"responded_by"`
}
