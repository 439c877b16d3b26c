package handlers

import (
	"errors"

	"userdir/internal/repositories"
	"userdir/internal/services"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service and store errors to HTTP status codes.
func statusFor(err error) int {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the standard error body. "message" is always present so
// clients can surface it directly.
func respondError(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"message": message}
	if err != nil {
		body["error"] = err.Error()
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			body["details"] = validationErr.Details
		}
	}
	return c.Status(status).JSON(body)
}
