package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"userdir/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCORSApp(origin string) *fiber.App {
	app := fiber.New()
	app.Use(middleware.CORS(origin))
	app.Get("/users", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestCORS_PreflightFromTrustedOrigin(t *testing.T) {
	app := setupCORSApp("http://localhost:5173")

	req := httptest.NewRequest(http.MethodOptions, "/users", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "PUT")
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "DELETE")
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Content-Type")
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORS_UntrustedOriginGetsNoAllowHeader(t *testing.T) {
	app := setupCORSApp("http://localhost:5173")

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Origin", "http://evil.example")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_DefaultsToLocalFrontend(t *testing.T) {
	app := setupCORSApp("")

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Origin", middleware.DefaultTrustedOrigin)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, middleware.DefaultTrustedOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
}
