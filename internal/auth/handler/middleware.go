package handler

import (
	"strings"

	"github.com/Hoff08/barbeariateste/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the locals key under which RequireAuth stores the
// authenticated user id.
const UserIDKey = "userID"

// RequireAuth guards protected routes: it verifies the bearer token is
// a valid, unexpired access token and stashes the user id claim.
// Absent, malformed, expired and wrong-kind tokens are all rejected the
// same way.
func RequireAuth(tokenService service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
		}

		claims, err := tokenService.Verify(token, service.TokenKindAccess)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
		}

		c.Locals(UserIDKey, claims.UserID)

		return c.Next()
	}
}
