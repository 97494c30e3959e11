package httperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// E is an error with an HTTP status attached. Handlers and services return
// these and the app-level error handler serializes them uniformly.
type E struct {
	Status  int
	Message string
	Details []string
}

func (e *E) Error() string {
	return e.Message
}

func New(status int, message string) *E {
	return &E{Status: status, Message: message}
}

func BadRequest(message string) *E {
	return New(fiber.StatusBadRequest, message)
}

func Unauthenticated(message string) *E {
	return New(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *E {
	return New(fiber.StatusForbidden, message)
}

func NotFound(message string) *E {
	return New(fiber.StatusNotFound, message)
}

func Internal(message string) *E {
	return New(fiber.StatusInternalServerError, message)
}

// Validation wraps per-field messages from the input validator.
func Validation(details []string) *E {
	return &E{Status: fiber.StatusBadRequest, Message: "Validation error", Details: details}
}

// Handler is the app-level fiber error handler. Unrecognized errors become a
// generic 500 so internal detail never reaches the client.
func Handler(c *fiber.Ctx, err error) error {
	var e *E
	if errors.As(err, &e) {
		body := fiber.Map{"message": e.Message}
		if len(e.Details) > 0 {
			body["details"] = e.Details
		}
		return c.Status(e.Status).JSON(body)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
}
