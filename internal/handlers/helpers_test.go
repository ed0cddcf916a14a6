package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/ginhoang9748-cell/focusflow-api/internal/config"
	"github.com/ginhoang9748-cell/focusflow-api/internal/database"
	"github.com/ginhoang9748-cell/focusflow-api/internal/models"
	"github.com/ginhoang9748-cell/focusflow-api/internal/routes"
)

// setupTestApp wires a fresh SQLite database and the full route table.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "focusflow_test.db"))
	cfg := config.Load()
	require.NoError(t, database.Connect(cfg))
	require.NoError(t, database.Migrate())

	app := fiber.New()
	routes.Setup(app)
	return app
}

// doJSON performs a request with an optional JSON body and decodes the
// JSON response into out (when out is non-nil).
func doJSON(t *testing.T, app *fiber.App, method, path string, body, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// createGoal inserts one goal through the bulk-create endpoint.
func createGoal(t *testing.T, app *fiber.App, title, timeOfDay string) models.Goal {
	t.Helper()

	var created []models.Goal
	status := doJSON(t, app, http.MethodPost, "/api/goals/", []models.CreateGoalRequest{
		{Title: title, Schedule: "Daily", Time: timeOfDay},
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, created, 1)
	return created[0]
}

// toggle hits the toggle endpoint; note == nil sends an empty body.
func toggle(t *testing.T, app *fiber.App, goalID string, note *string) (models.Goal, *models.TaskLog) {
	t.Helper()

	var body interface{}
	if note != nil {
		body = models.ToggleTaskRequest{Note: note}
	}

	var out struct {
		Goal models.Goal     `json:"goal"`
		Log  *models.TaskLog `json:"log"`
	}
	status := doJSON(t, app, http.MethodPost, "/api/goals/"+goalID+"/toggle", body, &out)
	require.Equal(t, http.StatusOK, status)
	return out.Goal, out.Log
}

// todayLogs fetches today's logs for a goal.
func todayLogs(t *testing.T, app *fiber.App, goalID, date string) []models.TaskLog {
	t.Helper()

	var logs []models.TaskLog
	status := doJSON(t, app, http.MethodGet, "/api/logs?goalId="+goalID+"&date="+date, nil, &logs)
	require.Equal(t, http.StatusOK, status)
	return logs
}

// uploadSound posts a multipart sound file.
func uploadSound(t *testing.T, app *fiber.App, filename string, content []byte, out interface{}) int {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("sound", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload/sound", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
