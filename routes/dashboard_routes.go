package routes

import (
	"github.com/gofiber/fiber/v2"

	"educrm/handlers"
	"educrm/middleware"
)

func DashboardRoutes(app *fiber.App, h *handlers.DashboardHandler) {
	api := app.Group("/api/v1", middleware.Protected())

	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", h.Stats)
	dashboard.Get("/activity", h.RecentActivity)
}
