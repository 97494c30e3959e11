package httperr

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: Handler})
	app.Get("/", func(c *fiber.Ctx) error {
		return err
	})
	return app
}

func doGet(t *testing.T, app *fiber.App) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestHandlerSerializesTaxonomy(t *testing.T) {
	cases := []struct {
		err    *E
		status int
	}{
		{BadRequest("Email already in use"), 400},
		{Unauthenticated("Not authenticated"), 401},
		{Forbidden("Forbidden"), 403},
		{NotFound("Event not found"), 404},
		{Internal("Error uploading files"), 500},
	}

	for _, tc := range cases {
		status, body := doGet(t, testApp(tc.err))
		assert.Equal(t, tc.status, status)
		assert.Equal(t, tc.err.Message, body["message"])
		assert.NotContains(t, body, "details")
	}
}

func TestHandlerIncludesValidationDetails(t *testing.T) {
	status, body := doGet(t, testApp(Validation([]string{"name is required", "email is required"})))
	assert.Equal(t, 400, status)
	assert.Equal(t, "Validation error", body["message"])
	assert.Equal(t, []interface{}{"name is required", "email is required"}, body["details"])
}

func TestHandlerHidesUnknownErrors(t *testing.T) {
	status, body := doGet(t, testApp(errors.New("pq: connection refused")))
	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestHandlerPassesThroughFiberErrors(t *testing.T) {
	status, body := doGet(t, testApp(fiber.ErrMethodNotAllowed))
	assert.Equal(t, 405, status)
	assert.Equal(t, "Method Not Allowed", body["message"])
}
