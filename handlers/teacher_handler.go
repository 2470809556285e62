package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm/services"
)

type TeacherHandler struct {
	teachers *services.TeacherService
}

func NewTeacherHandler(teachers *services.TeacherService) *TeacherHandler {
	return &TeacherHandler{teachers: teachers}
}

type CreateTeacherRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Specialty  string `json:"specialty"`
	Experience string `json:"experience"`
	AvatarURL  string `json:"avatarUrl"`
}

type UpdateTeacherRequest struct {
	FullName   *string `json:"fullName"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone"`
	Specialty  *string `json:"specialty"`
	Experience *string `json:"experience"`
	AvatarURL  *string `json:"avatarUrl"`
}

func (h *TeacherHandler) List(c *fiber.Ctx) error {
	teachers, err := h.teachers.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(teachers)
}

func (h *TeacherHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}
	teacher, err := h.teachers.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(teacher)
}

func (h *TeacherHandler) Create(c *fiber.Ctx) error {
	var req CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	teacher, err := h.teachers.Create(services.CreateTeacherInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Specialty:  req.Specialty,
		Experience: req.Experience,
		AvatarURL:  req.AvatarURL,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create teacher"})
	}
	return c.Status(fiber.StatusCreated).JSON(teacher)
}

func (h *TeacherHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}
	var req UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	teacher, err := h.teachers.Update(id, services.UpdateTeacherInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Specialty:  req.Specialty,
		Experience: req.Experience,
		AvatarURL:  req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update teacher"})
	}
	return c.JSON(teacher)
}

func (h *TeacherHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}
	if err := h.teachers.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete teacher"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
