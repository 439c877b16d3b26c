package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// DefaultTrustedOrigin is the browser origin allowed when none is configured.
const DefaultTrustedOrigin = "http://localhost:5173"

var (
	allowedMethods = []string{
		fiber.MethodGet,
		fiber.MethodHead,
		fiber.MethodPut,
		fiber.MethodPatch,
		fiber.MethodPost,
		fiber.MethodDelete,
	}
	allowedHeaders = []string{fiber.HeaderContentType, fiber.HeaderAuthorization}
)

// CORS allows cross-origin requests from a single trusted origin, with
// credentials, for the user API methods and the Content-Type/Authorization headers.
func CORS(trustedOrigin string) fiber.Handler {
	if trustedOrigin == "" {
		trustedOrigin = DefaultTrustedOrigin
	}
	return cors.New(cors.Config{
		AllowOrigins:     trustedOrigin,
		AllowMethods:     strings.Join(allowedMethods, ","),
		AllowHeaders:     strings.Join(allowedHeaders, ", "),
		AllowCredentials: true,
	})
}
