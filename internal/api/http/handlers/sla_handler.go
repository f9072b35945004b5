package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-support/internal/api/dto"
	"github.com/spec-kit/storefront-support/internal/service"
)

// SLAHandler exposes the routing rule endpoints.
type SLAHandler struct {
	sla *service.SLAService
}

// NewSLAHandler constructs handler.
func NewSLAHandler(slaService *service.SLAService) *SLAHandler {
	return &SLAHandler{sla: slaService}
}

// Create handles POST /sla.
func (h *SLAHandler) Create(c *fiber.Ctx) error {
	var req dto.SLARuleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	rule, err := h.sla.CreateRule(c.Context(), req.IssueType, req.Department, req.SLAHours)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   slaRuleView(*rule),
	})
}

// List handles GET /sla.
func (h *SLAHandler) List(c *fiber.Ctx) error {
	rules, err := h.sla.ListRules(c.Context())
	if err != nil {
		return err
	}

	views := make([]dto.SLARuleResponse, 0, len(rules))
	for _, rule := range rules {
		views = append(views, slaRuleView(rule))
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   views,
	})
}
