package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"educrm/storage"
)

type UploadHandler struct {
	avatars *storage.AvatarStorage
}

func NewUploadHandler(avatars *storage.AvatarStorage) *UploadHandler {
	return &UploadHandler{avatars: avatars}
}

type DeleteAvatarRequest struct {
	URL    string `json:"url" validate:"required,url"`
	Bucket string `json:"bucket" validate:"required,oneof=students-avatars teachers-avatars"`
}

func (h *UploadHandler) UploadAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Avatar file is required"})
	}

	bucket := c.FormValue("bucket", storage.TeachersBucket)
	if bucket != storage.StudentsBucket && bucket != storage.TeachersBucket {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown bucket"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	avatarURL, err := h.avatars.Upload(ctx, file, bucket)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload file"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": avatarURL})
}

// DeleteAvatar is best-effort by contract: it always reports success to the
// client, removal failures only end up in the log.
func (h *UploadHandler) DeleteAvatar(c *fiber.Ctx) error {
	var req DeleteAvatarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	h.avatars.Delete(ctx, req.URL, req.Bucket)
	return c.SendStatus(fiber.StatusNoContent)
}
