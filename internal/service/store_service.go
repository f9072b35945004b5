package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-support/internal/domain"
	"github.com/spec-kit/storefront-support/internal/events"
	"github.com/spec-kit/storefront-support/internal/repository"
	apperrors "github.com/spec-kit/storefront-support/pkg/util"
)

const earthRadiusKm = 6371.0

// StoreService manages the store directory and its read models.
type StoreService struct {
	stores       repository.StoreRepository
	updates      repository.StoreUpdateRepository
	specialHours repository.SpecialHoursRepository
	windows      repository.DeliveryWindowRepository
	dispatcher   events.Dispatcher
}

// StoreDependencies bundles repositories for the store service.
type StoreDependencies struct {
	StoreRepo        repository.StoreRepository
	StoreUpdateRepo  repository.StoreUpdateRepository
	SpecialHoursRepo repository.SpecialHoursRepository
	WindowRepo       repository.DeliveryWindowRepository
	Dispatcher       events.Dispatcher
}

// StoreCreateInput describes admin store creation payload.
type StoreCreateInput struct {
	Name        string
	Address     string
	Phone       string
	OpeningTime string
	ClosingTime string
	MapURL      *string
	Services    []string
	Latitude    *float64
	Longitude   *float64
}

// StoreUpdateInput carries only the fields the caller intends to change.
type StoreUpdateInput struct {
	Name        *string
	Address     *string
	Phone       *string
	OpeningTime *string
	ClosingTime *string
	MapURL      *string
	Services    []string
}

// SpecialHoursInput describes a special hours entry.
type SpecialHoursInput struct {
	Date        string
	OpeningTime string
	ClosingTime string
	Reason      *string
}

// DeliveryWindowInput describes a delivery window entry.
type DeliveryWindowInput struct {
	OpeningTime string
	ClosingTime string
	Note        *string
}

// NewStoreService constructs the service.
func NewStoreService(deps StoreDependencies) *StoreService {
	return &StoreService{
		stores:       deps.StoreRepo,
		updates:      deps.StoreUpdateRepo,
		specialHours: deps.SpecialHoursRepo,
		windows:      deps.WindowRepo,
		dispatcher:   deps.Dispatcher,
	}
}

// Create inserts a store. New stores are live immediately; only later
// updates pass through the approval gate.
func (s *StoreService) Create(ctx context.Context, input StoreCreateInput) (*domain.Store, error) {
	store := &domain.Store{
		Name:        input.Name,
		Address:     input.Address,
		Phone:       input.Phone,
		OpeningTime: input.OpeningTime,
		ClosingTime: input.ClosingTime,
		MapURL:      input.MapURL,
		Services:    input.Services,
		IsVerified:  true,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	}
	if store.Services == nil {
		store.Services = []string{}
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// RequestUpdate records a pending change carrying only the provided fields.
// The store row itself is untouched until approval.
func (s *StoreService) RequestUpdate(ctx context.Context, storeID string, input StoreUpdateInput) (*domain.StoreUpdate, error) {
	proposed := map[string]any{}
	if input.Name != nil {
		proposed["name"] = *input.Name
	}
	if input.Address != nil {
		proposed["address"] = *input.Address
	}
	if input.Phone != nil {
		proposed["phone"] = *input.Phone
	}
	if input.OpeningTime != nil {
		proposed["opening_time"] = *input.OpeningTime
	}
	if input.ClosingTime != nil {
		proposed["closing_time"] = *input.ClosingTime
	}
	if input.MapURL != nil {
		proposed["map_url"] = *input.MapURL
	}
	if input.Services != nil {
		proposed["services"] = input.Services
	}

	update := &domain.StoreUpdate{
		StoreID:      storeID,
		ProposedData: proposed,
	}
	if err := s.updates.Create(ctx, update); err != nil {
		return nil, err
	}
	return update, nil
}

// ApproveUpdate applies a pending update onto the store and marks it
// verified. The repository performs all three writes in one transaction.
func (s *StoreService) ApproveUpdate(ctx context.Context, storeID, updateID string) (map[string]any, error) {
	applied, err := s.updates.Approve(ctx, storeID, updateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundMessage("Update request not found")
		}
		return nil, err
	}
	return applied, nil
}

// AddSpecialHours inserts a special hours entry and emits an hours-change
// notification.
func (s *StoreService) AddSpecialHours(ctx context.Context, storeID string, input SpecialHoursInput) (*domain.SpecialHours, error) {
	entry := &domain.SpecialHours{
		StoreID:     storeID,
		Date:        input.Date,
		OpeningTime: input.OpeningTime,
		ClosingTime: input.ClosingTime,
		Reason:      input.Reason,
	}
	if err := s.specialHours.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventHoursChanged,
		Payload: events.HoursChangedPayload{
			StoreID: storeID,
			Message: fmt.Sprintf("Special hours added for %s: %s – %s", entry.Date, entry.OpeningTime, entry.ClosingTime),
		},
	})
	return entry, nil
}

// AddDeliveryWindow inserts a delivery window. No notification is emitted.
func (s *StoreService) AddDeliveryWindow(ctx context.Context, storeID string, input DeliveryWindowInput) (*domain.DeliveryWindow, error) {
	window := &domain.DeliveryWindow{
		StoreID:     storeID,
		OpeningTime: input.OpeningTime,
		ClosingTime: input.ClosingTime,
		Note:        input.Note,
	}
	if err := s.windows.Create(ctx, window); err != nil {
		return nil, err
	}
	return window, nil
}

// List returns all stores.
func (s *StoreService) List(ctx context.Context) ([]domain.Store, error) {
	return s.stores.List(ctx)
}

// GetByID fetches a single store.
func (s *StoreService) GetByID(ctx context.Context, storeID string) (*domain.Store, error) {
	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundMessage("Store not found")
		}
		return nil, err
	}
	return store, nil
}

// GetHours fetches the opening-hours projection of a store.
func (s *StoreService) GetHours(ctx context.Context, storeID string) (*domain.StoreHours, error) {
	hours, err := s.stores.GetHours(ctx, storeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundMessage("Store not found")
		}
		return nil, err
	}
	return hours, nil
}

// GetSpecialHours lists special hours for a store, earliest date first.
func (s *StoreService) GetSpecialHours(ctx context.Context, storeID string) ([]domain.SpecialHours, error) {
	return s.specialHours.ListByStore(ctx, storeID)
}

// GetDeliveryWindows lists delivery windows for a store.
func (s *StoreService) GetDeliveryWindows(ctx context.Context, storeID string) ([]domain.DeliveryWindow, error) {
	return s.windows.ListByStore(ctx, storeID)
}

// FilterByService returns verified stores offering the given service.
func (s *StoreService) FilterByService(ctx context.Context, service string) ([]domain.Store, error) {
	return s.stores.FilterByService(ctx, service)
}

// FindNearby returns stores within radiusKm of the given point. Stores
// missing either coordinate are excluded regardless of radius.
func (s *StoreService) FindNearby(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Store, error) {
	stores, err := s.stores.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Store, 0, len(stores))
	for _, store := range stores {
		if store.Latitude == nil || store.Longitude == nil {
			continue
		}
		if haversineKm(lat, lng, *store.Latitude, *store.Longitude) <= radiusKm {
			result = append(result, store)
		}
	}
	return result, nil
}

// haversineKm computes the great-circle distance between two coordinates.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180.0)*math.Cos(lat2*math.Pi/180.0)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func (s *StoreService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
