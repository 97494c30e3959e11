package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/shaikhsiddique/EventPlaner/internal/httperr"
	"github.com/shaikhsiddique/EventPlaner/internal/middleware"
	"github.com/shaikhsiddique/EventPlaner/internal/services"
	"github.com/shaikhsiddique/EventPlaner/internal/validation"
)

type eventCreateRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,min=2,max=200"`
	Description string  `json:"description" form:"description" validate:"required,min=10,max=2000"`
	Date        string  `json:"date" form:"date" validate:"required"`
	Time        string  `json:"time" form:"time" validate:"required"`
	Venue       string  `json:"venue" form:"venue" validate:"required,min=2,max=200"`
	ContactNo   string  `json:"contactNo" form:"contactNo" validate:"required"`
	Fee         *string `json:"fee" form:"fee"`
	TotalSeats  int     `json:"totalSeats" form:"totalSeats" validate:"required,min=1"`
}

type eventUpdateRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description" form:"description" validate:"omitempty,min=10,max=2000"`
	Date        *string `json:"date" form:"date"`
	Time        *string `json:"time" form:"time"`
	Venue       *string `json:"venue" form:"venue" validate:"omitempty,min=2,max=200"`
	ContactNo   *string `json:"contactNo" form:"contactNo"`
	Fee         *string `json:"fee" form:"fee"`
	TotalSeats  *int    `json:"totalSeats" form:"totalSeats" validate:"omitempty,min=1"`
}

// attachedFiles pulls the uploaded media out of a multipart request. A plain
// JSON request simply has none.
func attachedFiles(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["image"]
}

func CreateEvent(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return httperr.Unauthenticated("Not authenticated")
	}

	var req eventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest("Invalid request body")
	}
	if details := validation.Struct(req); details != nil {
		return httperr.Validation(details)
	}

	media, err := services.ProcessUploads(c.Context(), attachedFiles(c))
	if err != nil {
		return err
	}

	event, err := services.CreateEvent(c.Context(), services.EventData{
		Name:        req.Name,
		Image:       services.FirstImageURL(media),
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		ContactNo:   req.ContactNo,
		Fee:         req.Fee,
		TotalSeats:  req.TotalSeats,
	}, user.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func UpdateEvent(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return httperr.Unauthenticated("Not authenticated")
	}

	var req eventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest("Invalid request body")
	}
	if details := validation.Struct(req); details != nil {
		return httperr.Validation(details)
	}

	media, err := services.ProcessUploads(c.Context(), attachedFiles(c))
	if err != nil {
		return err
	}

	patch := services.EventPatch{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		ContactNo:   req.ContactNo,
		Fee:         req.Fee,
		TotalSeats:  req.TotalSeats,
	}
	if url := services.FirstImageURL(media); url != "" {
		patch.Image = &url
	}

	event, err := services.UpdateEvent(c.Context(), c.Params("id"), patch, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(event)
}

func DeleteEvent(c *fiber.Ctx) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return httperr.Unauthenticated("Not authenticated")
	}

	if err := services.DeleteEvent(c.Context(), c.Params("id"), user.ID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Event deleted"})
}

func ListEvents(c *fiber.Ctx) error {
	events, err := services.ListEvents(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(events)
}

func GetEvent(c *fiber.Ctx) error {
	event, err := services.GetEventByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(event)
}
