package dto

import "time"

// StoreCreateRequest payload used when an admin creates a new store.
type StoreCreateRequest struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	OpeningTime string   `json:"opening_time"`
	ClosingTime string   `json:"closing_time"`
	MapURL      *string  `json:"map_url"`
	Services    []string `json:"services"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// StoreUpdateRequest carries only the fields to change; absent fields stay
// untouched.
type StoreUpdateRequest struct {
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	Phone       *string  `json:"phone"`
	OpeningTime *string  `json:"opening_time"`
	ClosingTime *string  `json:"closing_time"`
	MapURL      *string  `json:"map_url"`
	Services    []string `json:"services"`
}

// SpecialHoursRequest payload.
type SpecialHoursRequest struct {
	Date        string  `json:"date"`
	OpeningTime string  `json:"opening_time"`
	ClosingTime string  `json:"closing_time"`
	Reason      *string `json:"reason"`
}

// DeliveryWindowRequest payload.
type DeliveryWindowRequest struct {
	OpeningTime string  `json:"opening_time"`
	ClosingTime string  `json:"closing_time"`
	Note        *string `json:"note"`
}

// StoreResponse view.
type StoreResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	OpeningTime string    `json:"opening_time"`
	ClosingTime string    `json:"closing_time"`
	MapURL      *string   `json:"map_url"`
	Services    []string  `json:"services"`
	IsVerified  bool      `json:"is_verified"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StoreHoursResponse view.
type StoreHoursResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

// StoreUpdateResponse view of a pending update.
type StoreUpdateResponse struct {
	ID           string         `json:"id"`
	StoreID      string         `json:"store_id"`
	ProposedData map[string]any `json:"proposed_data"`
	Approved     bool           `json:"approved"`
	CreatedAt    time.Time      `json:"created_at"`
}

// SpecialHoursResponse view.
type SpecialHoursResponse struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	Date        string    `json:"date"`
	OpeningTime string    `json:"opening_time"`
	ClosingTime string    `json:"closing_time"`
	Reason      *string   `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

// DeliveryWindowResponse view.
type DeliveryWindowResponse struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	OpeningTime string    `json:"opening_time"`
	ClosingTime string    `json:"closing_time"`
	Note        *string   `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}
