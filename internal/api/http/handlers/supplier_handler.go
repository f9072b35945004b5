package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-support/internal/api/dto"
	"github.com/spec-kit/storefront-support/internal/service"
)

// SupplierHandler exposes the department-side complaint endpoints.
type SupplierHandler struct {
	supplier *service.SupplierService
}

// NewSupplierHandler constructs handler.
func NewSupplierHandler(supplierService *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplier: supplierService}
}

// ListByDepartment handles GET /supplier/complaints/:department.
func (h *SupplierHandler) ListByDepartment(c *fiber.Ctx) error {
	complaints, err := h.supplier.ListByDepartment(c.Context(), c.Params("department"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   complaintViews(complaints),
	})
}

// Respond handles POST /supplier/complaints/:id/respond.
func (h *SupplierHandler) Respond(c *fiber.Ctx) error {
	var req dto.SupplierRespondRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Message) == "" {
		return fiber.NewError(http.StatusBadRequest, "message required")
	}

	complaint, err := h.supplier.Respond(c.Context(), c.Params("id"), req.Message)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"complaint_id": complaint.ID,
			"status":       complaint.Status,
		},
	})
}

// Escalate handles POST /supplier/complaints/:id/escalate.
func (h *SupplierHandler) Escalate(c *fiber.Ctx) error {
	var req dto.EscalationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return fiber.NewError(http.StatusBadRequest, "reason required")
	}

	ticket, err := h.supplier.Escalate(c.Context(), c.Params("id"), req.Reason)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   queueTicketView(*ticket),
	})
}

// StoreDetails handles GET /supplier/store/:id/details.
func (h *SupplierHandler) StoreDetails(c *fiber.Ctx) error {
	details, err := h.supplier.GetStoreDetails(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":           "success",
		"store_id":         details.StoreID,
		"hours":            storeHoursView(*details.Hours),
		"delivery_windows": deliveryWindowViews(details.Windows),
	})
}
