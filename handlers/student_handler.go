package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm/services"
)

type StudentHandler struct {
	students *services.StudentService
}

func NewStudentHandler(students *services.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

type CreateStudentRequest struct {
	FullName  string `json:"fullName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Status    string `json:"status" validate:"required,oneof=active inactive pending"`
	AvatarURL string `json:"avatarUrl"`
}

type UpdateStudentRequest struct {
	FullName  *string `json:"fullName"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Status    *string `json:"status" validate:"omitempty,oneof=active inactive pending"`
	AvatarURL *string `json:"avatarUrl"`
}

func (h *StudentHandler) List(c *fiber.Ctx) error {
	students, err := h.students.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(students)
}

func (h *StudentHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	student, err := h.students.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(student)
}

func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := h.students.Create(services.CreateStudentInput{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    req.Status,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student"})
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := h.students.Update(id, services.UpdateStudentInput{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    req.Status,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(student)
}

func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	if err := h.students.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
