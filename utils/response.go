package utils

import "github.com/gofiber/fiber/v2"

// Machine-readable error kinds carried in every client-facing error body.
const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
)

// ValidationError replies 400 with the validation kind.
func ValidationError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
		"kind":  KindValidation,
	})
}

// NotFoundError replies 404 with the not_found kind.
func NotFoundError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": msg,
		"kind":  KindNotFound,
	})
}
