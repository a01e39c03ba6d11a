package handler

import (
	"errors"
	"fmt"
	"strings"

	"go-delivery-api/internal/listing"
	"go-delivery-api/internal/maps"
	"go-delivery-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// respondError maps service errors onto status codes. fallback is the message
// sent for anything that is not a client error.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	case errors.Is(err, service.ErrRouteNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Route not found"})
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrBadRequest):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var upstream *maps.UpstreamError
	if errors.As(err, &upstream) {
		zap.L().Error(fallback,
			zap.String("path", c.Path()),
			zap.Int("upstream_status", upstream.Status),
			zap.Any("details", upstream.Details))
		return c.Status(500).JSON(fiber.Map{"error": fallback, "details": upstream.Details})
	}

	zap.L().Error(fallback, zap.String("path", c.Path()), zap.Error(err))
	return c.Status(500).JSON(fiber.Map{"error": fallback})
}

func invalidParam(name, raw string) error {
	return fmt.Errorf("%w: invalid %s %q", service.ErrBadRequest, name, raw)
}

// isDigits reports whether raw is a plain base-10 number. cast would read
// "010" as octal and accept "0x3" or "1.0".
func isDigits(raw string) bool {
	if raw == "" {
		return false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseID reads a positive integer path parameter
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	if !isDigits(raw) {
		return 0, invalidParam(name, raw)
	}
	id, err := decimalUint(raw)
	if err != nil || id == 0 {
		return 0, invalidParam(name, raw)
	}
	return id, nil
}

// optionalUint returns nil for a blank value
func optionalUint(name, raw string) (*uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if !isDigits(raw) {
		return nil, invalidParam(name, raw)
	}
	v, err := decimalUint(raw)
	if err != nil {
		return nil, invalidParam(name, raw)
	}
	return &v, nil
}

// decimalUint converts a digit string, leading zeros included
func decimalUint(digits string) (uint, error) {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return 0, nil
	}
	return cast.ToUintE(trimmed)
}

func pageFromQuery(c *fiber.Ctx) (listing.Page, error) {
	page, err := listing.ParsePage(c.Query("page"), listing.DefaultPageSize)
	if err != nil {
		return page, invalidParam("page", c.Query("page"))
	}
	return page, nil
}
