package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports liveness and which storage driver is in use.
func HandleHealth(storageDriver string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"storage": storageDriver,
		})
	}
}
