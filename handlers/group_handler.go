package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm/services"
)

type GroupHandler struct {
	groups *services.GroupService
}

func NewGroupHandler(groups *services.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

type CreateGroupRequest struct {
	Name      string `json:"name" validate:"required"`
	CourseID  string `json:"courseId" validate:"required,uuid"`
	TeacherID string `json:"teacherId" validate:"required,uuid"`
	Schedule  string `json:"schedule"`
}

type UpdateGroupRequest struct {
	Name      *string `json:"name"`
	CourseID  *string `json:"courseId" validate:"omitempty,uuid"`
	TeacherID *string `json:"teacherId" validate:"omitempty,uuid"`
	Schedule  *string `json:"schedule"`
}

type EnrollRequest struct {
	StudentID string `json:"studentId" validate:"required,uuid"`
}

func (h *GroupHandler) List(c *fiber.Ctx) error {
	groups, err := h.groups.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(groups)
}

func (h *GroupHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}
	group, err := h.groups.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(group)
}

func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var req CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	courseID, _ := uuid.Parse(req.CourseID)
	teacherID, _ := uuid.Parse(req.TeacherID)
	group, err := h.groups.Create(services.CreateGroupInput{
		Name:      req.Name,
		CourseID:  courseID,
		TeacherID: teacherID,
		Schedule:  req.Schedule,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create group"})
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

func (h *GroupHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}
	var req UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input := services.UpdateGroupInput{
		Name:     req.Name,
		Schedule: req.Schedule,
	}
	if req.CourseID != nil {
		courseID, _ := uuid.Parse(*req.CourseID)
		input.CourseID = &courseID
	}
	if req.TeacherID != nil {
		teacherID, _ := uuid.Parse(*req.TeacherID)
		input.TeacherID = &teacherID
	}

	group, err := h.groups.Update(id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update group"})
	}
	return c.JSON(group)
}

func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}
	if err := h.groups.Delete(id); err != nil {
		if errors.Is(err, services.ErrGroupHasStudents) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete group"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *GroupHandler) Enroll(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}
	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, _ := uuid.Parse(req.StudentID)
	if err := h.groups.EnrollStudent(groupID, studentID); err != nil {
		if errors.Is(err, services.ErrAlreadyEnrolled) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enroll student"})
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (h *GroupHandler) Unenroll(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	if err := h.groups.UnenrollStudent(groupID, studentID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unenroll student"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
