package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-support/internal/api/dto"
	"github.com/spec-kit/storefront-support/internal/service"
)

const defaultComplaintPriority = "medium"

// ComplaintsHandler exposes the customer-side complaint endpoints.
type ComplaintsHandler struct {
	complaints *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{complaints: complaintService}
}

// Create handles POST /complaints.
func (h *ComplaintsHandler) Create(c *fiber.Ctx) error {
	var req dto.ComplaintCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.UserID == "" || req.StoreID == "" || req.IssueType == "" {
		return fiber.NewError(http.StatusBadRequest, "user_id, store_id and issue_type required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return fiber.NewError(http.StatusBadRequest, "description required")
	}
	if req.Priority == "" {
		req.Priority = defaultComplaintPriority
	}

	complaint, err := h.complaints.Create(c.Context(), service.ComplaintCreateInput{
		UserID:      req.UserID,
		StoreID:     req.StoreID,
		IssueType:   req.IssueType,
		Priority:    req.Priority,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   complaintView(*complaint),
	})
}

// List handles GET /complaints.
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	complaints, err := h.complaints.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   complaintViews(complaints),
	})
}

// Get handles GET /complaints/:id.
func (h *ComplaintsHandler) Get(c *fiber.Ctx) error {
	complaint, err := h.complaints.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   complaintView(*complaint),
	})
}

// Escalate handles POST /complaints/:id/escalate.
func (h *ComplaintsHandler) Escalate(c *fiber.Ctx) error {
	ticket, err := h.complaints.Escalate(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   queueTicketView(*ticket),
	})
}
