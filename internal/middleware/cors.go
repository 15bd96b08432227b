package middleware

import "github.com/gofiber/fiber/v2"

const corsAllowHeaders = "authorization, x-client-info, apikey, content-type"

// CORS stamps the permissive CORS headers on every response and answers
// preflight requests with an empty 200.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)

		if c.Method() == fiber.MethodOptions {
			c.Status(fiber.StatusOK)
			return nil
		}
		return c.Next()
	}
}
