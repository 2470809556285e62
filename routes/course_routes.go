package routes

import (
	"github.com/gofiber/fiber/v2"

	"educrm/handlers"
	"educrm/middleware"
)

func CourseRoutes(app *fiber.App, h *handlers.CourseHandler) {
	api := app.Group("/api/v1", middleware.Protected())

	courses := api.Group("/courses")
	courses.Get("", h.List)
	courses.Get("/:id", h.Get)
	courses.Post("", h.Create)
	courses.Put("/:id", h.Update)
	courses.Delete("/:id", h.Delete)
}
