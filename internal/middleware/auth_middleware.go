package middleware

import (
	"strings"

	"cms/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that resolves the bearer token to
// a live user and stores it in the request context. Every failure
// (missing header, malformed token, bad signature, expiry, or a token
// whose user no longer exists) produces the same 401 body so callers
// cannot tell which check rejected them.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthenticated(c)
		}

		user, err := authService.ResolveUser(parts[1])
		if err != nil {
			return unauthenticated(c)
		}

		c.Locals("user", user)
		return c.Next()
	}
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": services.ErrUnauthenticated.Error(),
	})
}
