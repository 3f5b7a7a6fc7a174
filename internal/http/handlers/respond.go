package handlers

import "github.com/gofiber/fiber/v2"

// message is the uniform failure (and simple success) body: {"message": ...}.
// Internal error detail stays in the server log.
func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

func serverError(c *fiber.Ctx) error {
	return message(c, fiber.StatusInternalServerError, "Server error")
}
