package routes

import (
	"github.com/gofiber/fiber/v2"

	"educrm/handlers"
	"educrm/middleware"
)

func GroupRoutes(app *fiber.App, h *handlers.GroupHandler) {
	api := app.Group("/api/v1", middleware.Protected())

	groups := api.Group("/groups")
	groups.Get("", h.List)
	groups.Get("/:id", h.Get)
	groups.Post("", h.Create)
	groups.Put("/:id", h.Update)
	groups.Delete("/:id", h.Delete)

	groups.Post("/:id/students", h.Enroll)
	groups.Delete("/:id/students/:studentId", h.Unenroll)
}
