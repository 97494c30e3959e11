package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shaikhsiddique/EventPlaner/internal/httperr"
	"github.com/shaikhsiddique/EventPlaner/internal/services"
	"github.com/shaikhsiddique/EventPlaner/internal/token"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const authUserKey = "authUser"

// AuthUser is the authenticated identity attached to a request.
type AuthUser struct {
	ID    primitive.ObjectID
	Role  string
	Name  string
	Email string
}

// Auth resolves the session token into an authenticated identity. The cookie
// takes precedence over the bearer header. The referenced account must still
// exist in its role's collection.
func Auth(c *fiber.Ctx) error {
	tokenString := c.Cookies("token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if tokenString == "" {
		return httperr.Unauthenticated("Not authenticated")
	}

	claims, err := token.Verify(tokenString)
	if err != nil {
		return httperr.Unauthenticated("Invalid token")
	}

	accountID, err := primitive.ObjectIDFromHex(claims.AccountID)
	if err != nil {
		return httperr.Unauthenticated("Invalid token")
	}

	account, err := services.FindAccount(c.Context(), accountID, claims.Role)
	if err != nil {
		return err
	}

	c.Locals(authUserKey, AuthUser{
		ID:    account.ID,
		Role:  account.Role,
		Name:  account.Name,
		Email: account.Email,
	})

	return c.Next()
}

// UserFrom returns the identity Auth attached to the request.
func UserFrom(c *fiber.Ctx) (AuthUser, bool) {
	user, ok := c.Locals(authUserKey).(AuthUser)
	return user, ok
}
