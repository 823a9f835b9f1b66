package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"brokerdesk/docs"
)

// SwaggerUI serves the API docs with the host and scheme the caller used.
// defaultHost is used when the request carries no Host header.
func SwaggerUI(defaultHost string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = swaggerHost(c.Get(fiber.HeaderHost), defaultHost)
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}

func swaggerHost(header, fallback string) string {
	if header == "" {
		return fallback
	}
	return header
}
