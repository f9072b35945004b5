package http

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-support/internal/observability"
	apperrors "github.com/spec-kit/storefront-support/pkg/util"
)

func TestErrorMiddlewareResponseShape(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)

	app.Get("/domain", func(*fiber.Ctx) error {
		return apperrors.NewNotFoundMessage("Store not found")
	})
	app.Get("/fiber", func(*fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	})
	app.Get("/plain", func(*fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/panic", func(*fiber.Ctx) error {
		panic("boom")
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success"})
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantDetail string
	}{
		{"domain error", "/domain", 404, "Store not found"},
		{"fiber error", "/fiber", 400, "invalid payload"},
		{"plain error becomes internal", "/plain", 500, "internal server error"},
		{"panic becomes internal", "/panic", 500, "internal server error"},
		{"success untouched", "/ok", 200, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantDetail == "" {
				return
			}
			var body struct {
				Detail string `json:"detail"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Detail != tt.wantDetail {
				t.Errorf("detail = %q, want %q", body.Detail, tt.wantDetail)
			}
		})
	}
}

func TestErrorMiddlewareRecordsMetrics(t *testing.T) {
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()

	if got := metrics.RequestCount("/ok", "GET", 200); got != 1 {
		t.Errorf("request count = %d, want 1", got)
	}
}
