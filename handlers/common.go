// handlers/common.go
package handlers

import (
	"errors"

	"nation-game-server/services"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// moneyPrinter renders currency amounts with digit grouping for
// user-facing messages ("You earned $12,500").
var moneyPrinter = message.NewPrinter(language.English)

// respondErr maps service sentinels onto HTTP statuses. Anything outside
// the taxonomy is an opaque 500.
func respondErr(c *fiber.Ctx, err error, action string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not found",
			"cause": err.Error(),
		})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
			"cause": err.Error(),
		})
	case errors.Is(err, services.ErrInsufficientFunds):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "insufficient funds",
			"cause": err.Error(),
		})
	case errors.Is(err, services.ErrAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "already exists",
			"cause": err.Error(),
		})
	case errors.Is(err, services.ErrNotDue):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "not due",
			"cause": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to " + action,
			"cause": err.Error(),
		})
	}
}
