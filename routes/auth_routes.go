package routes

import (
	"github.com/gofiber/fiber/v2"

	"educrm/handlers"
	"educrm/middleware"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", h.Login)
	auth.Get("/me", middleware.Protected(), h.Me)
}
