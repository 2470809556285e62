package handlers

import (
	"github.com/gofiber/fiber/v2"

	"educrm/services"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboard.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(stats)
}

func (h *DashboardHandler) RecentActivity(c *fiber.Ctx) error {
	activities, err := h.dashboard.RecentActivity()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(activities)
}
