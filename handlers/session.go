// handlers/session.go
package handlers

import (
	"nation-game-server/middleware"
	"nation-game-server/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSessionRoutes(app *fiber.App, sessionService *services.SessionService) {
	// 🔓 Public route — no user context, but still behind Gateway auth
	app.Get("/countries", func(c *fiber.Ctx) error {
		countries, err := sessionService.Countries()
		if err != nil {
			return respondErr(c, err, "list countries")
		}
		return c.JSON(fiber.Map{"countries": countries})
	})

	// 🔐 Secured routes — require player context from the Gateway
	secured := app.Group("/s", middleware.PlayerContextMiddleware())

	secured.Post("/session", func(c *fiber.Ctx) error {
		var body struct {
			CountryID string `json:"country_id"`
		}
		if err := c.BodyParser(&body); err != nil || body.CountryID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "country_id is required",
			})
		}

		view, err := sessionService.Create(middleware.PlayerID(c), body.CountryID)
		if err != nil {
			return respondErr(c, err, "create session")
		}
		return c.Status(fiber.StatusCreated).JSON(view)
	})

	secured.Get("/session", func(c *fiber.Ctx) error {
		view, err := sessionService.Latest(middleware.PlayerID(c))
		if err != nil {
			return respondErr(c, err, "load session")
		}
		return c.JSON(view)
	})

	secured.Get("/session/:id", func(c *fiber.Ctx) error {
		view, err := sessionService.Get(c.Params("id"))
		if err != nil {
			return respondErr(c, err, "load session")
		}
		return c.JSON(view)
	})
}
