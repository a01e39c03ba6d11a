package handler

import (
	"go-delivery-api/internal/repository"
	"go-delivery-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RouteHandler struct {
	service service.RouteService
}

func NewRouteHandler(s service.RouteService) *RouteHandler {
	return &RouteHandler{service: s}
}

// SaveRoute stores a planned route; stops keep their submitted order
// POST /api/save-route
func (h *RouteHandler) SaveRoute(c *fiber.Ctx) error {
	var req service.SaveRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	route, err := h.service.SaveRoute(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to save route")
	}
	return c.Status(201).JSON(fiber.Map{"data": route})
}

// GET /api/routes?storeId=&date=&page=
func (h *RouteHandler) GetRoutes(c *fiber.Ctx) error {
	storeID, err := optionalUint("storeId", c.Query("storeId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch routes")
	}
	day, err := service.ParseDay(c.Query("date"))
	if err != nil {
		return respondError(c, err, "Failed to fetch routes")
	}
	page, err := pageFromQuery(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch routes")
	}

	result, err := h.service.ListRoutes(c.UserContext(), repository.RouteFilter{StoreID: storeID, Day: day}, page)
	if err != nil {
		return respondError(c, err, "Failed to fetch routes")
	}
	return c.JSON(fiber.Map{"data": result})
}

// GET /api/routes/:id
func (h *RouteHandler) GetRoute(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Failed to fetch route")
	}

	route, err := h.service.GetRoute(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Failed to fetch route")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"route": route}})
}
