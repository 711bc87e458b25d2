package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/mebel/internal/config"
	"github.com/example/mebel/internal/utils"
)

const testSecret = "gate-test-secret"

func newGateApp() *fiber.App {
	cfg := &config.Config{JWTSecret: testSecret, TokenExpires: time.Hour}

	app := fiber.New()
	app.Use(SessionGate(cfg))

	app.Post("/api/auth/login", func(c *fiber.Ctx) error {
		return c.SendString("login")
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/api/main", func(c *fiber.Ctx) error {
		claims, ok := SessionClaims(c)
		if !ok {
			return fiber.NewError(fiber.StatusInternalServerError, "claims missing")
		}
		return c.SendString(claims.Email)
	})

	return app
}

func TestSessionGate_AllowListedPathWithoutCookie(t *testing.T) {
	app := newGateApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/auth/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSessionGate_ProtectedPathWithoutCookie(t *testing.T) {
	app := newGateApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/main", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSessionGate_ValidToken(t *testing.T) {
	app := newGateApp()

	token, err := utils.GenerateToken(testSecret, 5, "a@x.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/main", nil)
	req.Header.Set("Cookie", SessionCookie+"=Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", string(body))
}

func TestSessionGate_LegacyCookieName(t *testing.T) {
	app := newGateApp()

	token, err := utils.GenerateToken(testSecret, 5, "a@x.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/main", nil)
	req.Header.Set("Cookie", LegacySessionCookie+"=Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// An expired token must surface as a clean 401, never a decode fault.
func TestSessionGate_ExpiredToken(t *testing.T) {
	app := newGateApp()

	token, err := utils.GenerateToken(testSecret, 5, "a@x.com", -time.Second)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/main", nil)
	req.Header.Set("Cookie", SessionCookie+"=Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSessionGate_GarbageToken(t *testing.T) {
	app := newGateApp()

	req := httptest.NewRequest("GET", "/api/main", nil)
	req.Header.Set("Cookie", SessionCookie+"=Bearer not.a.jwt")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
