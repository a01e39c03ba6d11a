package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"go-delivery-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(signer *jwt.Signer, mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", mw, func(c *fiber.Ctx) error {
		id, ok := UserID(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.JSON(fiber.Map{"id": id, "email": c.Locals("user_email")})
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	signer := jwt.NewSigner("mw-secret", time.Hour)
	app := newApp(signer, RequireAuth(signer))

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	foreign, err := jwt.NewSigner("other-secret", time.Hour).GenerateToken(1, "a@b.c", "A")
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+foreign)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	token, err := signer.GenerateToken(9, "ana@example.com", "Ana")
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"id":9,"email":"ana@example.com"}`, string(body))
}

func TestOptionalAuth(t *testing.T) {
	signer := jwt.NewSigner("mw-secret", time.Hour)
	app := newApp(signer, OptionalAuth(signer))

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "anonymous", string(body))
}
