package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shaikhsiddique/EventPlaner/internal/httperr"
	"github.com/shaikhsiddique/EventPlaner/internal/middleware"
	"github.com/shaikhsiddique/EventPlaner/internal/services"
	"github.com/shaikhsiddique/EventPlaner/internal/validation"
)

type registerRequest struct {
	FullName         string `json:"fullName" validate:"required,min=2,max=100"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,phone"`
	College          string `json:"college" validate:"required,min=2,max=200"`
	Branch           string `json:"branch" validate:"required,min=2,max=100"`
	Year             string `json:"year" validate:"required,min=1,max=50"`
	TeamSize         int    `json:"teamSize" validate:"omitempty,min=1,max=20"`
	PaymentReference string `json:"paymentReference" validate:"omitempty,max=200"`
}

type registrationUpdateRequest struct {
	FullName         *string `json:"fullName" validate:"omitempty,min=2,max=100"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Phone            *string `json:"phone" validate:"omitempty,phone"`
	College          *string `json:"college" validate:"omitempty,min=2,max=200"`
	Branch           *string `json:"branch" validate:"omitempty,min=2,max=100"`
	Year             *string `json:"year" validate:"omitempty,min=1,max=50"`
	TeamSize         *int    `json:"teamSize" validate:"omitempty,min=1,max=20"`
	PaymentReference *string `json:"paymentReference" validate:"omitempty,max=200"`
}

func Register(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return httperr.Unauthenticated("Not authenticated")
	}

	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest("Invalid request body")
	}
	if details := validation.Struct(req); details != nil {
		return httperr.Validation(details)
	}
	if req.TeamSize == 0 {
		req.TeamSize = 1
	}

	entry, err := services.Register(c.Context(), c.Params("eventId"), services.RegistrationData{
		User:           user.ID,
		Name:           req.FullName,
		Email:          req.Email,
		PaymentDetails: req.PaymentReference,
		Contact:        req.Phone,
		CollegeName:    req.College,
		Branch:         req.Branch,
		Year:           req.Year,
		TeamSize:       req.TeamSize,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func ListRegistrations(c *fiber.Ctx) error {
	resolve := c.Query("resolve") == "true"
	entries, err := services.ListForEvent(c.Context(), c.Params("eventId"), resolve)
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

func UpdateRegistration(c *fiber.Ctx) error {
	var req registrationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest("Invalid request body")
	}
	if details := validation.Struct(req); details != nil {
		return httperr.Validation(details)
	}

	entry, err := services.UpdateEntry(c.Context(), c.Params("eventId"), c.Params("studentId"), services.RegistrationPatch{
		Name:           req.FullName,
		Email:          req.Email,
		PaymentDetails: req.PaymentReference,
		Contact:        req.Phone,
		CollegeName:    req.College,
		Branch:         req.Branch,
		Year:           req.Year,
		TeamSize:       req.TeamSize,
	})
	if err != nil {
		return err
	}

	return c.JSON(entry)
}

func DeleteRegistration(c *fiber.Ctx) error {
	if err := services.DeleteEntry(c.Context(), c.Params("eventId"), c.Params("studentId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Registration deleted"})
}
