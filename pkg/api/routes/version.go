package routes

import "github.com/gofiber/fiber/v2"

const Name = "Journey Search"
const Version = "v1.0.0"

func APIVersion(environment string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":        Name,
			"version":     Version,
			"environment": environment,
		})
	}
}
