package handler

import (
	"go-delivery-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics
// Query params: storeId (optional)
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	storeID, err := optionalUint("storeId", c.Query("storeId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch dashboard stats")
	}

	stats, err := h.service.GetDashboardStats(c.UserContext(), storeID)
	if err != nil {
		return respondError(c, err, "Failed to fetch dashboard stats")
	}

	return c.JSON(fiber.Map{"data": stats})
}
