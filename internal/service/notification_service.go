package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-support/internal/domain"
	"github.com/spec-kit/storefront-support/internal/events"
	"github.com/spec-kit/storefront-support/internal/repository"
)

const (
	notificationLimitDefault = 50
	notificationLimitMax     = 200
)

// NotificationService records hours-change notifications and serves the feed.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventHoursChanged, n.handleHoursChanged)
	n.dispatcher.Subscribe(events.EventComplaintCreated, n.handleComplaintCreated)
	n.dispatcher.Subscribe(events.EventComplaintEscalated, n.handleComplaintEscalated)
	n.dispatcher.Subscribe(events.EventComplaintResponded, n.handleComplaintResponded)
}

// handleHoursChanged persists the side-channel record. The write is
// best-effort: a storage failure is logged and never fails the request that
// triggered it.
func (n *NotificationService) handleHoursChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.HoursChangedPayload)
	if !ok {
		return nil
	}
	notification := &domain.Notification{
		StoreID: payload.StoreID,
		Type:    domain.NotificationTypeHoursUpdate,
		Message: payload.Message,
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Warn("failed to record hours notification",
			zap.String("store_id", payload.StoreID),
			zap.Error(err))
	}
	return nil
}

func (n *NotificationService) handleComplaintCreated(_ context.Context, event events.Event) error {
	n.logger.Info("ComplaintCreated", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleComplaintEscalated(_ context.Context, event events.Event) error {
	n.logger.Info("ComplaintEscalated", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleComplaintResponded(_ context.Context, event events.Event) error {
	n.logger.Info("ComplaintResponded", zap.Any("payload", event.Payload))
	return nil
}

// ListRecent returns notifications newest first, with limit clamped to
// [1, 200] and defaulting to 50.
func (n *NotificationService) ListRecent(ctx context.Context, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = notificationLimitDefault
	}
	if limit > notificationLimitMax {
		limit = notificationLimitMax
	}
	return n.notifications.ListRecent(ctx, limit)
}
