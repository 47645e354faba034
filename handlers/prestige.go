// handlers/prestige.go
package handlers

import (
	"nation-game-server/middleware"
	"nation-game-server/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPrestigeRoutes(app *fiber.App, prestigeService *services.PrestigeService) {
	secured := app.Group("/s", middleware.PlayerContextMiddleware())

	secured.Get("/session/:id/prestige", func(c *fiber.Ctx) error {
		view, err := prestigeService.Overview(c.Params("id"))
		if err != nil {
			return respondErr(c, err, "load prestige")
		}
		return c.JSON(view)
	})

	secured.Post("/session/:id/prestige/reset", func(c *fiber.Ctx) error {
		result, err := prestigeService.Reset(c.Params("id"))
		if err != nil {
			return respondErr(c, err, "prestige reset")
		}
		return c.JSON(fiber.Map{
			"result":  result,
			"message": moneyPrinter.Sprintf("Run complete — %d diplomacy tokens earned", result.TokensEarned),
		})
	})

	secured.Post("/session/:id/prestige/upgrades", func(c *fiber.Ctx) error {
		var body struct {
			UpgradeKey string `json:"upgrade_key"`
		}
		if err := c.BodyParser(&body); err != nil || body.UpgradeKey == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "upgrade_key is required",
			})
		}

		upgrade, err := prestigeService.Purchase(middleware.PlayerID(c), c.Params("id"), body.UpgradeKey)
		if err != nil {
			return respondErr(c, err, "purchase upgrade")
		}
		return c.Status(fiber.StatusCreated).JSON(upgrade)
	})
}
