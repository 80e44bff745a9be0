package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/flightsearch/pkg/catalog"
)

func sendError(c *fiber.Ctx, status int, message string) error {
	c.SendStatus(status)
	return c.JSON(fiber.Map{
		"error": message,
	})
}

// sendLookupError maps aggregator lookup failures onto HTTP statuses
func sendLookupError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrInvalidFilter):
		return sendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrDataUnavailable):
		return sendError(c, fiber.StatusServiceUnavailable, "Flight catalog is currently unavailable")
	default:
		return sendError(c, fiber.StatusInternalServerError, err.Error())
	}
}
