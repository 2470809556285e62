package routes

import (
	"github.com/gofiber/fiber/v2"

	"educrm/handlers"
	"educrm/middleware"
)

func StudentRoutes(app *fiber.App, h *handlers.StudentHandler) {
	api := app.Group("/api/v1", middleware.Protected())

	students := api.Group("/students")
	students.Get("", h.List)
	students.Get("/:id", h.Get)
	students.Post("", h.Create)
	students.Put("/:id", h.Update)
	students.Delete("/:id", h.Delete)
}
