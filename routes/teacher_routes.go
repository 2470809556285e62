package routes

import (
	"github.com/gofiber/fiber/v2"

	"educrm/handlers"
	"educrm/middleware"
)

func TeacherRoutes(app *fiber.App, h *handlers.TeacherHandler) {
	api := app.Group("/api/v1", middleware.Protected())

	teachers := api.Group("/teachers")
	teachers.Get("", h.List)
	teachers.Get("/:id", h.Get)
	teachers.Post("", h.Create)
	teachers.Put("/:id", h.Update)
	teachers.Delete("/:id", h.Delete)
}
