package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-support/internal/api/dto"
	"github.com/spec-kit/storefront-support/internal/service"
)

// AgentHandler exposes the live-agent queue endpoints.
type AgentHandler struct {
	queue *service.QueueService
}

// NewAgentHandler constructs handler.
func NewAgentHandler(queueService *service.QueueService) *AgentHandler {
	return &AgentHandler{queue: queueService}
}

// Queue handles GET /agent/queue.
func (h *AgentHandler) Queue(c *fiber.Ctx) error {
	entries, err := h.queue.ListWaiting(c.Context())
	if err != nil {
		return err
	}

	views := make([]dto.QueueEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, queueEntryView(entry))
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   views,
	})
}

// Take handles POST /agent/queue/:id/take.
func (h *AgentHandler) Take(c *fiber.Ctx) error {
	ticket, err := h.queue.Take(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   queueTicketView(*ticket),
	})
}

// Close handles POST /agent/queue/:id/close.
func (h *AgentHandler) Close(c *fiber.Ctx) error {
	ticket, err := h.queue.Close(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   queueTicketView(*ticket),
	})
}
