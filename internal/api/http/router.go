package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-support/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Chat          *handlers.ChatHandler
	Stores        *handlers.StoresHandler
	AdminStores   *handlers.AdminStoresHandler
	Complaints    *handlers.ComplaintsHandler
	Supplier      *handlers.SupplierHandler
	SLA           *handlers.SLAHandler
	Agent         *handlers.AgentHandler
	Feedback      *handlers.FeedbackHandler
	Notifications *handlers.NotificationsHandler
	ChatLimiter   fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)

	if cfg.ChatLimiter != nil {
		app.Post("/chat", cfg.ChatLimiter, cfg.Chat.Handle)
	} else {
		app.Post("/chat", cfg.Chat.Handle)
	}

	// filter and nearby must come before the :id routes
	stores := app.Group("/stores")
	stores.Get("/filter", cfg.Stores.Filter)
	stores.Get("/nearby", cfg.Stores.Nearby)
	stores.Get("/", cfg.Stores.List)
	stores.Get("/:id", cfg.Stores.Get)
	stores.Get("/:id/hours", cfg.Stores.Hours)
	stores.Get("/:id/special-hours", cfg.Stores.SpecialHours)
	stores.Get("/:id/delivery-windows", cfg.Stores.DeliveryWindows)

	admin := app.Group("/admin/stores")
	admin.Post("/", cfg.AdminStores.Create)
	admin.Put("/:id", cfg.AdminStores.RequestUpdate)
	admin.Post("/:id/approve/:update_id", cfg.AdminStores.Approve)
	admin.Post("/:id/special-hours", cfg.AdminStores.AddSpecialHours)
	admin.Post("/:id/delivery-windows", cfg.AdminStores.AddDeliveryWindow)

	complaints := app.Group("/complaints")
	complaints.Post("/", cfg.Complaints.Create)
	complaints.Get("/", cfg.Complaints.List)
	complaints.Get("/:id", cfg.Complaints.Get)
	complaints.Post("/:id/escalate", cfg.Complaints.Escalate)

	supplier := app.Group("/supplier")
	supplier.Get("/complaints/:department", cfg.Supplier.ListByDepartment)
	supplier.Post("/complaints/:id/respond", cfg.Supplier.Respond)
	supplier.Post("/complaints/:id/escalate", cfg.Supplier.Escalate)
	supplier.Get("/store/:id/details", cfg.Supplier.StoreDetails)

	sla := app.Group("/sla")
	sla.Post("/", cfg.SLA.Create)
	sla.Get("/", cfg.SLA.List)

	agent := app.Group("/agent/queue")
	agent.Get("/", cfg.Agent.Queue)
	agent.Post("/:id/take", cfg.Agent.Take)
	agent.Post("/:id/close", cfg.Agent.Close)

	app.Post("/feedback", cfg.Feedback.Create)
	app.Get("/notifications", cfg.Notifications.List)
}
