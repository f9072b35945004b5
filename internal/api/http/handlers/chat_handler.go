package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-support/internal/api/dto"
	"github.com/spec-kit/storefront-support/internal/service"
)

// ChatHandler relays chatbot messages.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chatService}
}

// Handle handles POST /chat.
func (h *ChatHandler) Handle(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Message) == "" {
		return fiber.NewError(http.StatusBadRequest, "message required")
	}

	reply, err := h.chat.Handle(c.Context(), service.ChatInput{
		Message:    req.Message,
		Language:   req.Language,
		SenderID:   req.SenderID,
		AuthHeader: c.Get(fiber.HeaderAuthorization),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"reply":  reply,
	})
}
