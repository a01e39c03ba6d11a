package handler

import (
	"go-delivery-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PlanningHandler relays mapping API calls. Upstream failures come back as
// 500 with the upstream payload under "details".
type PlanningHandler struct {
	service service.PlanningService
}

func NewPlanningHandler(s service.PlanningService) *PlanningHandler {
	return &PlanningHandler{service: s}
}

// POST /api/optimize-routes
func (h *PlanningHandler) OptimizeRoutes(c *fiber.Ctx) error {
	var req service.OptimizeRoutesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.OptimizeRoutes(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to optimize routes")
	}
	return c.JSON(fiber.Map{"data": result})
}

// POST /api/route-info
func (h *PlanningHandler) RouteInfo(c *fiber.Ctx) error {
	var req service.RouteInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.RouteInfo(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to fetch route info")
	}
	return c.JSON(fiber.Map{"data": result})
}

// POST /api/geocode
func (h *PlanningHandler) Geocode(c *fiber.Ctx) error {
	var req service.GeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.Geocode(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to geocode address")
	}
	return c.JSON(fiber.Map{"data": result})
}

// POST /api/reverse-geocode
func (h *PlanningHandler) ReverseGeocode(c *fiber.Ctx) error {
	var req service.ReverseGeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.ReverseGeocode(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to reverse geocode")
	}
	return c.JSON(fiber.Map{"data": result})
}
