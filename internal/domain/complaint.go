package domain

import "time"

// ComplaintStatus enumerates lifecycle states for complaints.
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "pending"
	ComplaintStatusInProgress ComplaintStatus = "in-progress"
	ComplaintStatusEscalated  ComplaintStatus = "escalated"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
)

// DefaultDepartment receives complaints whose issue type has no SLA rule.
const DefaultDepartment = "general_support"

// DefaultSLAHours is the response budget applied when no SLA rule matches.
const DefaultSLAHours = 24

// Complaint is the aggregate for customer complaints.
type Complaint struct {
	ID                 string
	UserID             string
	StoreID            string
	IssueType          string
	Priority           string
	Description        string
	Status             ComplaintStatus
	AssignedDepartment string
	SLAHours           int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ComplaintResponse is an append-only audit entry for supplier replies.
type ComplaintResponse struct {
	ID           string
	ComplaintID  string
	RespondedBy  string
	ResponseType string
	Message      string
	CreatedAt    time.Time
}
