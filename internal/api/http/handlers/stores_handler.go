package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-support/internal/service"
)

// StoresHandler exposes the public store directory endpoints.
type StoresHandler struct {
	stores *service.StoreService
}

// NewStoresHandler constructs handler.
func NewStoresHandler(storeService *service.StoreService) *StoresHandler {
	return &StoresHandler{stores: storeService}
}

// List handles GET /stores.
func (h *StoresHandler) List(c *fiber.Ctx) error {
	stores, err := h.stores.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   storeViews(stores),
	})
}

// Get handles GET /stores/:id.
func (h *StoresHandler) Get(c *fiber.Ctx) error {
	store, err := h.stores.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   storeView(*store),
	})
}

// Hours handles GET /stores/:id/hours.
func (h *StoresHandler) Hours(c *fiber.Ctx) error {
	hours, err := h.stores.GetHours(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   storeHoursView(*hours),
	})
}

// SpecialHours handles GET /stores/:id/special-hours.
func (h *StoresHandler) SpecialHours(c *fiber.Ctx) error {
	entries, err := h.stores.GetSpecialHours(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   specialHoursViews(entries),
	})
}

// DeliveryWindows handles GET /stores/:id/delivery-windows.
func (h *StoresHandler) DeliveryWindows(c *fiber.Ctx) error {
	windows, err := h.stores.GetDeliveryWindows(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   deliveryWindowViews(windows),
	})
}

// Filter handles GET /stores/filter?service=.
func (h *StoresHandler) Filter(c *fiber.Ctx) error {
	serviceName := c.Query("service")
	if serviceName == "" {
		return fiber.NewError(http.StatusBadRequest, "service query parameter required")
	}

	stores, err := h.stores.FilterByService(c.Context(), serviceName)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   storeViews(stores),
	})
}

// Nearby handles GET /stores/nearby?latitude=&longitude=&radius_km=.
func (h *StoresHandler) Nearby(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "latitude query parameter required")
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "longitude query parameter required")
	}
	radius := 10.0
	if raw := c.Query("radius_km"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			return fiber.NewError(http.StatusBadRequest, "radius_km must be a positive number")
		}
	}

	stores, err := h.stores.FindNearby(c.Context(), lat, lng, radius)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   storeViews(stores),
	})
}
