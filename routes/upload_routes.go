package routes

import (
	"github.com/gofiber/fiber/v2"

	"educrm/handlers"
	"educrm/middleware"
)

func UploadRoutes(app *fiber.App, h *handlers.UploadHandler) {
	api := app.Group("/api/v1", middleware.Protected())

	upload := api.Group("/upload")
	upload.Post("/avatar", h.UploadAvatar)
	upload.Delete("/avatar", h.DeleteAvatar)
}
