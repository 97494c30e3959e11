package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiBase = "http://localhost:5000"

type accountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type eventResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Venue      string `json:"venue"`
	TotalSeats int    `json:"totalSeats"`
	CreatedBy  string `json:"createdBy"`
}

type entryResponse struct {
	ID    string `json:"id"`
	Event string `json:"event"`
	User  string `json:"user"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type errorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// client keeps its session cookie between calls, like a browser would.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

func postJSON(t *testing.T, client *http.Client, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := client.Post(apiBase+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func postMultipart(t *testing.T, client *http.Client, method, path string, fields map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, apiBase+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

// TestAPIEndpoints runs the full workflow against a running server.
func TestAPIEndpoints(t *testing.T) {
	resp, err := http.Get(apiBase + "/health")
	if err != nil {
		t.Skipf("API server is not running at %s: %v", apiBase, err)
	}
	resp.Body.Close()

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	adminEmail := fmt.Sprintf("admin-%s@example.com", suffix)
	otherAdminEmail := fmt.Sprintf("admin2-%s@example.com", suffix)
	studentEmail := fmt.Sprintf("student-%s@example.com", suffix)

	admin := newClient(t)
	otherAdmin := newClient(t)
	student := newClient(t)
	anonymous := newClient(t)

	var adminAccount accountResponse
	t.Run("Admin Signup", func(t *testing.T) {
		resp := postJSON(t, admin, "/api/auth/admin/signup", map[string]string{
			"name":     "A",
			"email":    adminEmail,
			"phone":    "1234567",
			"password": "secret1",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		decode(t, resp, &adminAccount)
		assert.Equal(t, "admin", adminAccount.Role)
		assert.NotEmpty(t, adminAccount.ID)
	})

	t.Run("Duplicate Admin Email Rejected", func(t *testing.T) {
		resp := postJSON(t, newClient(t), "/api/auth/admin/signup", map[string]string{
			"name":     "A2",
			"email":    adminEmail,
			"phone":    "1234567",
			"password": "secret1",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Signup Validation Errors Listed", func(t *testing.T) {
		resp := postJSON(t, newClient(t), "/api/auth/admin/signup", map[string]string{
			"name":  "A",
			"email": "bad-email",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorResponse
		decode(t, resp, &body)
		assert.Equal(t, "Validation error", body.Message)
		assert.NotEmpty(t, body.Details)
	})

	t.Run("Wrong Password Indistinguishable From Unknown Email", func(t *testing.T) {
		wrongPass := postJSON(t, newClient(t), "/api/auth/admin/login", map[string]string{
			"email":    adminEmail,
			"password": "wrongpass",
		})
		noAccount := postJSON(t, newClient(t), "/api/auth/admin/login", map[string]string{
			"email":    "nobody-" + suffix + "@example.com",
			"password": "whatever1",
		})
		var a, b errorResponse
		require.Equal(t, http.StatusUnauthorized, wrongPass.StatusCode)
		require.Equal(t, http.StatusUnauthorized, noAccount.StatusCode)
		decode(t, wrongPass, &a)
		decode(t, noAccount, &b)
		assert.Equal(t, a.Message, b.Message)
	})

	t.Run("Other Admin Signup", func(t *testing.T) {
		resp := postJSON(t, otherAdmin, "/api/auth/admin/signup", map[string]string{
			"name":     "B",
			"email":    otherAdminEmail,
			"phone":    "1234567",
			"password": "secret1",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Student Signup", func(t *testing.T) {
		resp := postJSON(t, student, "/api/auth/student/signup", map[string]string{
			"name":        "S One",
			"email":       studentEmail,
			"phone":       "9876543",
			"password":    "secret1",
			"collegeName": "Example Institute",
			"branch":      "CSE",
			"year":        "2nd",
		})
		var account accountResponse
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		decode(t, resp, &account)
		assert.Equal(t, "student", account.Role)
	})

	t.Run("Events Require Authentication", func(t *testing.T) {
		resp, err := anonymous.Get(apiBase + "/api/events")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	var event eventResponse
	t.Run("Create Event", func(t *testing.T) {
		resp := postMultipart(t, admin, http.MethodPost, "/api/events", map[string]string{
			"name":        "Hack Day",
			"description": "desc text here",
			"date":        "2099-01-01",
			"time":        "10:00",
			"venue":       "Hall A",
			"contactNo":   "1112223",
			"totalSeats":  "5",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		decode(t, resp, &event)
		assert.Equal(t, adminAccount.ID, event.CreatedBy)
		assert.NotEmpty(t, event.ID)
	})

	t.Run("Student Cannot Create Event", func(t *testing.T) {
		resp := postMultipart(t, student, http.MethodPost, "/api/events", map[string]string{
			"name":        "Rogue Event",
			"description": "desc text here",
			"date":        "2099-01-01",
			"time":        "10:00",
			"venue":       "Hall B",
			"contactNo":   "1112223",
			"totalSeats":  "5",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Get Event By ID", func(t *testing.T) {
		resp, err := student.Get(apiBase + "/api/events/" + event.ID)
		require.NoError(t, err)
		var got eventResponse
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decode(t, resp, &got)
		assert.Equal(t, "Hack Day", got.Name)
	})

	var entry entryResponse
	t.Run("Register Student", func(t *testing.T) {
		resp := postJSON(t, student, "/api/registrations/"+event.ID+"/register", map[string]interface{}{
			"fullName": "S One",
			"email":    studentEmail,
			"phone":    "9876543",
			"college":  "Example Institute",
			"branch":   "CSE",
			"year":     "2nd",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		decode(t, resp, &entry)
		assert.Equal(t, event.ID, entry.Event)
		assert.NotEmpty(t, entry.ID)
	})

	t.Run("Duplicate Registration Rejected", func(t *testing.T) {
		resp := postJSON(t, student, "/api/registrations/"+event.ID+"/register", map[string]interface{}{
			"fullName": "S One",
			"email":    studentEmail,
			"phone":    "9876543",
			"college":  "Example Institute",
			"branch":   "CSE",
			"year":     "2nd",
		})
		var body errorResponse
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		decode(t, resp, &body)
		assert.Equal(t, "Student already registered for this event", body.Message)
	})

	t.Run("List Registrations Has Exactly One Entry", func(t *testing.T) {
		resp, err := anonymous.Get(apiBase + "/api/registrations/" + event.ID + "/students")
		require.NoError(t, err)
		var entries []entryResponse
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decode(t, resp, &entries)
		require.Len(t, entries, 1)
		assert.Equal(t, entry.ID, entries[0].ID)
	})

	t.Run("Admin Updates Registration Entry", func(t *testing.T) {
		body, err := json.Marshal(map[string]string{"fullName": "S One Renamed"})
		require.NoError(t, err)
		req, err := http.NewRequest(http.MethodPut, apiBase+"/api/registrations/"+event.ID+"/students/"+entry.ID, bytes.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := admin.Do(req)
		require.NoError(t, err)
		var updated entryResponse
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decode(t, resp, &updated)
		assert.Equal(t, "S One Renamed", updated.Name)
	})

	t.Run("Other Admin Cannot Update Event", func(t *testing.T) {
		resp := postMultipart(t, otherAdmin, http.MethodPut, "/api/events/"+event.ID, map[string]string{
			"venue": "Usurped Hall",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Other Admin Cannot Delete Event", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, apiBase+"/api/events/"+event.ID, nil)
		require.NoError(t, err)
		resp, err := otherAdmin.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Owner Updates Event", func(t *testing.T) {
		resp := postMultipart(t, admin, http.MethodPut, "/api/events/"+event.ID, map[string]string{
			"venue": "Hall C",
		})
		var updated eventResponse
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decode(t, resp, &updated)
		assert.Equal(t, "Hall C", updated.Venue)
		assert.Equal(t, "Hack Day", updated.Name) // merge is partial
	})

	t.Run("Admin Me Lists Created Events", func(t *testing.T) {
		resp, err := admin.Get(apiBase + "/api/auth/me")
		require.NoError(t, err)
		var body struct {
			CreatedEvents []string `json:"createdEvents"`
		}
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decode(t, resp, &body)
		assert.Contains(t, body.CreatedEvents, event.ID)
	})

	t.Run("Owner Deletes Event", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, apiBase+"/api/events/"+event.ID, nil)
		require.NoError(t, err)
		resp, err := admin.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Deleted Event Gone From List And Me", func(t *testing.T) {
		resp, err := admin.Get(apiBase + "/api/events")
		require.NoError(t, err)
		var events []eventResponse
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decode(t, resp, &events)
		for _, e := range events {
			assert.NotEqual(t, event.ID, e.ID)
		}

		meResp, err := admin.Get(apiBase + "/api/auth/me")
		require.NoError(t, err)
		var me struct {
			CreatedEvents []string `json:"createdEvents"`
		}
		require.Equal(t, http.StatusOK, meResp.StatusCode)
		decode(t, meResp, &me)
		assert.NotContains(t, me.CreatedEvents, event.ID)
	})

	t.Run("Logout Clears Session", func(t *testing.T) {
		resp := postJSON(t, student, "/api/auth/logout", map[string]string{})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		after, err := student.Get(apiBase + "/api/events")
		require.NoError(t, err)
		defer after.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, after.StatusCode)
	})
}
