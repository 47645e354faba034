// handlers/laws.go
package handlers

import (
	"nation-game-server/middleware"
	"nation-game-server/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLawRoutes(app *fiber.App, lawService *services.LawService) {
	secured := app.Group("/s", middleware.PlayerContextMiddleware())

	secured.Get("/session/:id/laws", func(c *fiber.Ctx) error {
		listing, err := lawService.List(c.Params("id"))
		if err != nil {
			return respondErr(c, err, "list laws")
		}
		return c.JSON(listing)
	})

	secured.Post("/session/:id/laws", func(c *fiber.Ctx) error {
		var body struct {
			LawKey string `json:"law_key"`
		}
		if err := c.BodyParser(&body); err != nil || body.LawKey == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "law_key is required",
			})
		}

		pending, err := lawService.Propose(c.Params("id"), body.LawKey)
		if err != nil {
			return respondErr(c, err, "propose law")
		}
		return c.Status(fiber.StatusCreated).JSON(pending)
	})

	// Council vote on a suggested law: enact now or take the popularity
	// hit for rejecting it.
	secured.Post("/session/:id/laws/decide", func(c *fiber.Ctx) error {
		var body struct {
			LawKey  string `json:"law_key"`
			Approve bool   `json:"approve"`
		}
		if err := c.BodyParser(&body); err != nil || body.LawKey == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "law_key is required",
			})
		}

		if err := lawService.Decide(c.Params("id"), body.LawKey, body.Approve); err != nil {
			return respondErr(c, err, "decide law")
		}
		return c.JSON(fiber.Map{"law_key": body.LawKey, "approved": body.Approve})
	})

	secured.Delete("/session/:id/laws/pending/:lawID", func(c *fiber.Ctx) error {
		if err := lawService.Cancel(c.Params("id"), c.Params("lawID")); err != nil {
			return respondErr(c, err, "cancel law")
		}
		return c.JSON(fiber.Map{"cancelled": true})
	})

	secured.Delete("/session/:id/laws/active/:lawID", func(c *fiber.Ctx) error {
		if err := lawService.Repeal(c.Params("id"), c.Params("lawID")); err != nil {
			return respondErr(c, err, "repeal law")
		}
		return c.JSON(fiber.Map{"repealed": true})
	})
}
