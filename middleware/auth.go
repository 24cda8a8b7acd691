package middleware

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ServiceAuthMiddleware validates the Bearer token on every request when
// SERVICE_TOKEN is set. When it is unset the service runs open, which is
// the normal local-development setup.
func ServiceAuthMiddleware() fiber.Handler {
	expectedToken := os.Getenv("SERVICE_TOKEN")
	if expectedToken == "" {
		log.Println("⚠️  SERVICE_TOKEN not set, running without request authentication")
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication token missing",
			})
		}

		// Parse "Bearer <token>", accepting a raw token as well.
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if token != expectedToken {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid authentication token",
			})
		}

		return c.Next()
	}
}
