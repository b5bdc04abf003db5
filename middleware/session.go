package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// SessionMiddleware extracts the caller's device identity. Clients generate
// a session id once and send it on every request; it is what ties a device
// to its player across reloads and reconnects.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Get("X-Session-ID")
		if sid == "" {
			log.Printf("[SESSION] X-Session-ID missing on %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing X-Session-ID header",
			})
		}

		c.Locals("session_id", sid)
		return c.Next()
	}
}
