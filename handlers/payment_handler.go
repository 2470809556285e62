package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm/services"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type CreatePaymentRequest struct {
	StudentID string  `json:"studentId" validate:"required,uuid"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Status    string  `json:"status" validate:"required,oneof=paid pending failed"`
	Method    string  `json:"method" validate:"required"`
}

type UpdatePaymentRequest struct {
	StudentID *string  `json:"studentId" validate:"omitempty,uuid"`
	Amount    *float64 `json:"amount" validate:"omitempty,gt=0"`
	Status    *string  `json:"status" validate:"omitempty,oneof=paid pending failed"`
	Method    *string  `json:"method"`
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	payments, err := h.payments.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}
	payment, err := h.payments.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(payment)
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, _ := uuid.Parse(req.StudentID)
	payment, err := h.payments.Create(services.CreatePaymentInput{
		StudentID: studentID,
		Amount:    req.Amount,
		Status:    req.Status,
		Method:    req.Method,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payment"})
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}
	var req UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input := services.UpdatePaymentInput{
		Amount: req.Amount,
		Status: req.Status,
		Method: req.Method,
	}
	if req.StudentID != nil {
		studentID, _ := uuid.Parse(*req.StudentID)
		input.StudentID = &studentID
	}

	payment, err := h.payments.Update(id, input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment"})
	}
	return c.JSON(payment)
}

func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}
	if err := h.payments.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
