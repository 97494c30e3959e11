package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shaikhsiddique/EventPlaner/internal/config"
	"github.com/shaikhsiddique/EventPlaner/internal/httperr"
	"github.com/shaikhsiddique/EventPlaner/internal/middleware"
	"github.com/shaikhsiddique/EventPlaner/internal/models"
	"github.com/shaikhsiddique/EventPlaner/internal/services"
	"github.com/shaikhsiddique/EventPlaner/internal/token"
	"github.com/shaikhsiddique/EventPlaner/internal/validation"
)

var cfg config.Config

// Init wires the handlers' runtime configuration (cookie security, origins).
func Init(c config.Config) {
	cfg = c
}

type studentSignupRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,phone"`
	Password    string `json:"password" validate:"required,min=6,max=128"`
	CollegeName string `json:"collegeName" validate:"required,min=2,max=200"`
	Branch      string `json:"branch" validate:"required,min=2,max=100"`
	Year        string `json:"year" validate:"required,oneof=1st 2nd 3rd 4th"`
}

type adminSignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Phone    string `json:"phone" validate:"required,phone"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

func setTokenCookie(c *fiber.Ctx, tokenString string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    tokenString,
		HTTPOnly: true,
		Secure:   cfg.AppEnv == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(token.TTL),
	})
}

func clearTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		HTTPOnly: true,
		Secure:   cfg.AppEnv == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}

func StudentSignup(c *fiber.Ctx) error {
	var req studentSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest("Invalid request body")
	}
	if details := validation.Struct(req); details != nil {
		return httperr.Validation(details)
	}

	account, err := services.CreateStudent(c.Context(), services.StudentData{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
		CollegeName: req.CollegeName,
		Branch:      req.Branch,
		Year:        req.Year,
	})
	if err != nil {
		return err
	}

	tokenString, err := token.Issue(account.ID.Hex(), account.Role)
	if err != nil {
		return err
	}
	setTokenCookie(c, tokenString)

	return c.Status(fiber.StatusCreated).JSON(account)
}

func StudentLogin(c *fiber.Ctx) error {
	return login(c, models.RoleStudent)
}

func AdminSignup(c *fiber.Ctx) error {
	var req adminSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest("Invalid request body")
	}
	if details := validation.Struct(req); details != nil {
		return httperr.Validation(details)
	}

	account, err := services.CreateAdmin(c.Context(), services.AdminData{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	tokenString, err := token.Issue(account.ID.Hex(), account.Role)
	if err != nil {
		return err
	}
	setTokenCookie(c, tokenString)

	return c.Status(fiber.StatusCreated).JSON(account)
}

func AdminLogin(c *fiber.Ctx) error {
	return login(c, models.RoleAdmin)
}

func login(c *fiber.Ctx, role string) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest("Invalid request body")
	}
	if details := validation.Struct(req); details != nil {
		return httperr.Validation(details)
	}

	account, err := services.Authenticate(c.Context(), req.Email, req.Password, role)
	if err != nil {
		return err
	}

	tokenString, err := token.Issue(account.ID.Hex(), account.Role)
	if err != nil {
		return err
	}
	setTokenCookie(c, tokenString)

	return c.JSON(account)
}

func Logout(c *fiber.Ctx) error {
	clearTokenCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Me returns the authenticated account. Admins also get their created-events
// list, derived from the events collection.
func Me(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return httperr.Unauthenticated("Not authenticated")
	}

	switch user.Role {
	case models.RoleAdmin:
		admin, err := services.GetAdmin(c.Context(), user.ID)
		if err != nil {
			return err
		}
		ids, err := services.IDsByOwner(c.Context(), user.ID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"account": admin, "createdEvents": ids})
	case models.RoleStudent:
		student, err := services.GetStudent(c.Context(), user.ID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"account": student})
	default:
		return httperr.Unauthenticated("Invalid role")
	}
}
