package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	ClientIPContextKey  = "client_ip"
	UserAgentContextKey = "user_agent"
)

// RequestInfo extracts the real client IP (Cloudflare-aware) and user agent
// for request logging.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.Get("CF-Connecting-IP")
		if ip == "" {
			ip = c.IP()
		}

		c.Locals(ClientIPContextKey, ip)
		c.Locals(UserAgentContextKey, c.Get("User-Agent"))

		return c.Next()
	}
}
