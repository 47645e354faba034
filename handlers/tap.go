// handlers/tap.go
package handlers

import (
	"nation-game-server/middleware"
	"nation-game-server/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTapRoutes(app *fiber.App, tapService *services.TapService, electionService *services.ElectionService) {
	secured := app.Group("/s", middleware.PlayerContextMiddleware())

	secured.Post("/session/:id/tap", func(c *fiber.Ctx) error {
		var body struct {
			Taps int `json:"taps"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "taps is required",
			})
		}

		result, err := tapService.ResolveTap(c.Params("id"), body.Taps)
		if err != nil {
			return respondErr(c, err, "resolve taps")
		}

		return c.JSON(fiber.Map{
			"result":  result,
			"message": moneyPrinter.Sprintf("You earned $%d", result.MoneyEarned),
		})
	})

	secured.Post("/session/:id/election", func(c *fiber.Ctx) error {
		result, err := electionService.Resolve(c.Params("id"))
		if err != nil {
			return respondErr(c, err, "resolve election")
		}
		return c.JSON(result)
	})

	secured.Get("/session/:id/elections", func(c *fiber.Ctx) error {
		history, err := electionService.History(c.Params("id"))
		if err != nil {
			return respondErr(c, err, "load election history")
		}
		return c.JSON(fiber.Map{"elections": history})
	})
}
