package routes

import (
	"github.com/gofiber/fiber/v2"

	"educrm/handlers"
	"educrm/middleware"
)

func PaymentRoutes(app *fiber.App, h *handlers.PaymentHandler) {
	api := app.Group("/api/v1", middleware.Protected())

	payments := api.Group("/payments")
	payments.Get("", h.List)
	payments.Get("/:id", h.Get)
	payments.Post("", h.Create)
	payments.Put("/:id", h.Update)
	payments.Delete("/:id", h.Delete)
}
