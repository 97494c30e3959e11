package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shaikhsiddique/EventPlaner/internal/httperr"
)

// RequireRole gates a route to the given roles. It always runs after Auth;
// a request that never authenticated gets 401, a wrong role gets 403.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFrom(c)
		if !ok {
			return httperr.Unauthenticated("Not authenticated")
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return httperr.Forbidden("Forbidden")
	}
}
