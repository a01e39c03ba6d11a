package handler

import (
	"go-delivery-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers lists all users
// GET /api/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return respondError(c, err, "Failed to fetch users")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"users": users, "total": len(users)}})
}

// RegisterUser creates an account with a hashed password
// POST /api/register-user
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var req service.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.userService.RegisterUser(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to register user")
	}
	return c.Status(201).JSON(fiber.Map{"data": user})
}
