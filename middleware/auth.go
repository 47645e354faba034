// middleware/auth.go
package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PlayerContextMiddleware extracts the player identity set by the
// Gateway. Every game route is player-scoped, so a missing X-User-ID on
// a secured path is a hard 401 — the game service never resolves
// identity itself.
func PlayerContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		playerID := c.Get("X-User-ID")
		rolesStr := c.Get("X-User-Roles")

		path := c.Path()
		isSecured := strings.HasPrefix(path, "/s/")
		if isSecured && playerID == "" {
			log.Printf("❌ [PLAYER_CTX] X-User-ID required but missing on secured route: %s", path)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing X-User-ID — request must come through gateway with auth context",
			})
		}

		var roles []string
		if rolesStr != "" {
			for _, r := range strings.Split(rolesStr, ",") {
				r = strings.TrimSpace(r)
				if r != "" {
					roles = append(roles, r)
				}
			}
		}

		c.Locals("player_id", playerID)
		c.Locals("player_roles", roles)

		return c.Next()
	}
}

// PlayerID reads the gateway-resolved player identity off the request.
func PlayerID(c *fiber.Ctx) string {
	if id, ok := c.Locals("player_id").(string); ok {
		return id
	}
	return ""
}
