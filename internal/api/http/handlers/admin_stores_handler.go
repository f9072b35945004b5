package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-support/internal/api/dto"
	"github.com/spec-kit/storefront-support/internal/service"
)

// AdminStoresHandler exposes the admin-side store mutations.
type AdminStoresHandler struct {
	stores *service.StoreService
}

// NewAdminStoresHandler constructs handler.
func NewAdminStoresHandler(storeService *service.StoreService) *AdminStoresHandler {
	return &AdminStoresHandler{stores: storeService}
}

// Create handles POST /admin/stores.
func (h *AdminStoresHandler) Create(c *fiber.Ctx) error {
	var req dto.StoreCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Address == "" {
		return fiber.NewError(http.StatusBadRequest, "name and address required")
	}

	store, err := h.stores.Create(c.Context(), service.StoreCreateInput{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		MapURL:      req.MapURL,
		Services:    req.Services,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   storeView(*store),
	})
}

// RequestUpdate handles PUT /admin/stores/:id. The change is only recorded;
// nothing is applied until a supervisor approves it.
func (h *AdminStoresHandler) RequestUpdate(c *fiber.Ctx) error {
	var req dto.StoreUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	update, err := h.stores.RequestUpdate(c.Context(), c.Params("id"), service.StoreUpdateInput{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		MapURL:      req.MapURL,
		Services:    req.Services,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":         "success",
		"pending_update": storeUpdateView(*update),
	})
}

// Approve handles POST /admin/stores/:id/approve/:update_id.
func (h *AdminStoresHandler) Approve(c *fiber.Ctx) error {
	applied, err := h.stores.ApproveUpdate(c.Context(), c.Params("id"), c.Params("update_id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":          "success",
		"applied_changes": applied,
	})
}

// AddSpecialHours handles POST /admin/stores/:id/special-hours.
func (h *AdminStoresHandler) AddSpecialHours(c *fiber.Ctx) error {
	var req dto.SpecialHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Date == "" || req.OpeningTime == "" || req.ClosingTime == "" {
		return fiber.NewError(http.StatusBadRequest, "date, opening_time and closing_time required")
	}

	entry, err := h.stores.AddSpecialHours(c.Context(), c.Params("id"), service.SpecialHoursInput{
		Date:        req.Date,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		Reason:      req.Reason,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   specialHoursView(*entry),
	})
}

// AddDeliveryWindow handles POST /admin/stores/:id/delivery-windows.
func (h *AdminStoresHandler) AddDeliveryWindow(c *fiber.Ctx) error {
	var req dto.DeliveryWindowRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.OpeningTime == "" || req.ClosingTime == "" {
		return fiber.NewError(http.StatusBadRequest, "opening_time and closing_time required")
	}

	window, err := h.stores.AddDeliveryWindow(c.Context(), c.Params("id"), service.DeliveryWindowInput{
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		Note:        req.Note,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   deliveryWindowView(*window),
	})
}
