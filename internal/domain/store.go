package domain

import "time"

// Store is the aggregate for storefront records.
type Store struct {
	ID          string
	Name        string
	Address     string
	Phone       string
	OpeningTime string
	ClosingTime string
	MapURL      *string
	Services    []string
	IsVerified  bool
	Latitude    *float64
	Longitude   *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StoreHours is the opening-hours projection of a store.
type StoreHours struct {
	ID          string
	Name        string
	OpeningTime string
	ClosingTime string
}

// StoreUpdate is a pending change awaiting supervisor approval.
type StoreUpdate struct {
	ID           string
	StoreID      string
	ProposedData map[string]any
	Approved     bool
	CreatedAt    time.Time
}

// SpecialHours is an append-only holiday/maintenance hours entry.
type SpecialHours struct {
	ID          string
	StoreID     string
	Date        string
	OpeningTime string
	ClosingTime string
	Reason      *string
	CreatedAt   time.Time
}

// DeliveryWindow is a supplier delivery slot for a store.
type DeliveryWindow struct {
	ID          string
	StoreID     string
	OpeningTime string
	ClosingTime string
	Note        *string
	CreatedAt   time.Time
}
