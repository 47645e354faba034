// handlers/military.go
package handlers

import (
	"nation-game-server/catalog"
	"nation-game-server/middleware"
	"nation-game-server/services"

	"github.com/gofiber/fiber/v2"
)

func SetupMilitaryRoutes(app *fiber.App, militaryService *services.MilitaryService, diplomacyService *services.DiplomacyService) {
	secured := app.Group("/s", middleware.PlayerContextMiddleware())

	secured.Get("/session/:id/military", func(c *fiber.Ctx) error {
		military, err := militaryService.Overview(c.Params("id"))
		if err != nil {
			return respondErr(c, err, "load military")
		}
		return c.JSON(fiber.Map{
			"military": military,
			"units":    catalog.Units,
		})
	})

	secured.Post("/session/:id/military/recruit", func(c *fiber.Ctx) error {
		var body struct {
			UnitType string `json:"unit_type"`
			Quantity int    `json:"quantity"`
		}
		if err := c.BodyParser(&body); err != nil || body.UnitType == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unit_type and quantity are required",
			})
		}

		result, err := militaryService.Recruit(c.Params("id"), body.UnitType, body.Quantity)
		if err != nil {
			return respondErr(c, err, "recruit units")
		}
		return c.JSON(fiber.Map{
			"result":  result,
			"message": moneyPrinter.Sprintf("Recruitment complete for $%d", result.TotalCost),
		})
	})

	secured.Get("/session/:id/diplomacy", func(c *fiber.Ctx) error {
		alliances, err := diplomacyService.List(c.Params("id"))
		if err != nil {
			return respondErr(c, err, "list alliances")
		}
		return c.JSON(fiber.Map{
			"alliances": alliances,
			"actions":   catalog.DiplomaticActions,
			"partners":  catalog.DiplomacyPartners,
		})
	})

	secured.Post("/session/:id/diplomacy", func(c *fiber.Ctx) error {
		var body struct {
			ActionKey string `json:"action_key"`
			AllyName  string `json:"ally_name"`
		}
		if err := c.BodyParser(&body); err != nil || body.ActionKey == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "action_key is required",
			})
		}

		result, err := diplomacyService.Form(c.Params("id"), body.ActionKey, body.AllyName)
		if err != nil {
			return respondErr(c, err, "form alliance")
		}
		return c.Status(fiber.StatusCreated).JSON(result)
	})

	secured.Delete("/session/:id/diplomacy/:allianceID", func(c *fiber.Ctx) error {
		if err := diplomacyService.Dissolve(c.Params("id"), c.Params("allianceID")); err != nil {
			return respondErr(c, err, "dissolve alliance")
		}
		return c.JSON(fiber.Map{"dissolved": true})
	})
}
