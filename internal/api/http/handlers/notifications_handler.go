package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-support/internal/api/dto"
	"github.com/spec-kit/storefront-support/internal/service"
)

// NotificationsHandler serves the notification feed.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notificationService}
}

// List handles GET /notifications?limit=.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	notifications, err := h.notifications.ListRecent(c.Context(), limit)
	if err != nil {
		return err
	}

	views := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, notificationView(n))
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   views,
	})
}
