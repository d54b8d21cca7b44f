package teacher

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

func markAttendanceApp() *fiber.App {
	app := fiber.New()
	app.Post("/attendance/mark", func(c *fiber.Ctx) error {
		c.Locals("user", &models.User{ID: "teacher-1", Role: models.RoleTeacher})
		return MarkAttendanceAPI(c)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestMarkAttendanceRejectsInvalidStatus(t *testing.T) {
	app := markAttendanceApp()

	status, body := postJSON(t, app, "/attendance/mark", fiber.Map{
		"class_id":   "3f0e8b8c-6d0a-4f6b-9b1a-2c3d4e5f6a7b",
		"subject_id": "9a1b2c3d-4e5f-4a6b-8c7d-0e1f2a3b4c5d",
		"date":       "2026-08-29",
		"attendance_data": map[string]string{
			"11112222-3333-4444-5555-666677778888": "present",
			"aaaabbbb-cccc-4ddd-eeee-ffff00001111": "sick",
		},
	})

	assert.Equal(t, 400, status)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "Invalid attendance status")
}

func TestMarkAttendanceRejectsInvalidDate(t *testing.T) {
	app := markAttendanceApp()

	status, body := postJSON(t, app, "/attendance/mark", fiber.Map{
		"class_id":   "3f0e8b8c-6d0a-4f6b-9b1a-2c3d4e5f6a7b",
		"subject_id": "9a1b2c3d-4e5f-4a6b-8c7d-0e1f2a3b4c5d",
		"date":       "29/08/2026",
		"attendance_data": map[string]string{
			"11112222-3333-4444-5555-666677778888": "present",
		},
	})

	assert.Equal(t, 400, status)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "Invalid date format")
}

func TestMarkAttendanceRejectsEmptyRoster(t *testing.T) {
	app := markAttendanceApp()

	status, body := postJSON(t, app, "/attendance/mark", fiber.Map{
		"class_id":        "3f0e8b8c-6d0a-4f6b-9b1a-2c3d4e5f6a7b",
		"subject_id":      "9a1b2c3d-4e5f-4a6b-8c7d-0e1f2a3b4c5d",
		"date":            "2026-08-29",
		"attendance_data": map[string]string{},
	})

	assert.Equal(t, 400, status)
	assert.Equal(t, false, body["success"])
}
