package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-support/internal/api/dto"
	"github.com/spec-kit/storefront-support/internal/service"
)

// FeedbackHandler records user feedback.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedbackService}
}

// Create handles POST /feedback.
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Category == "" || strings.TrimSpace(req.Message) == "" {
		return fiber.NewError(http.StatusBadRequest, "category and message required")
	}

	entry, err := h.feedback.Submit(c.Context(), req.UserID, req.Category, req.Message)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data": dto.FeedbackResponse{
			ID:        entry.ID,
			UserID:    entry.UserID,
			Category:  entry.Category,
			Message:   entry.Message,
			CreatedAt: entry.CreatedAt,
		},
	})
}
