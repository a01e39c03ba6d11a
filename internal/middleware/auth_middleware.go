package middleware

import (
	"strings"

	"go-delivery-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// bearerClaims extracts and validates "Bearer <token>"
func bearerClaims(c *fiber.Ctx, signer *jwt.Signer) (*jwt.Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, jwt.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, jwt.ErrInvalidToken
	}

	return signer.ValidateToken(parts[1])
}

func setUser(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_name", claims.Name)
}

// RequireAuth rejects requests without a valid bearer token and sets user info in context
func RequireAuth(signer *jwt.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := bearerClaims(c, signer)
		if err == jwt.ErrMissingToken {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		setUser(c, claims)
		return c.Next()
	}
}

// OptionalAuth sets user info when a valid token is present and never rejects
func OptionalAuth(signer *jwt.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, err := bearerClaims(c, signer); err == nil {
			setUser(c, claims)
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id, if any
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("user_id").(uint)
	return id, ok
}
