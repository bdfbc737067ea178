package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/db"
	"github.com/terraincognita07/rangepicker/internal/i18n"
)

const testSecretKey = "test-secret-key-with-enough-entropy-123456"

func testPickerClock() time.Time {
	return time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
}

func newPickerTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "rangepicker-api-test.db")
	database, err := db.OpenSQLiteQuiet(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewEmbeddedManager(i18n.LangEN)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := newHandlerWithClock(database, testSecretKey, time.UTC, i18nManager, false, testPickerClock)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func readPickerView(t *testing.T, response *http.Response) pickerView {
	t.Helper()
	defer response.Body.Close()

	if response.StatusCode != fiber.StatusOK {
		payload, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status 200, got %d: %s", response.StatusCode, string(payload))
	}
	view := pickerView{}
	if err := json.NewDecoder(response.Body).Decode(&view); err != nil {
		t.Fatalf("decode picker view: %v", err)
	}
	return view
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	bytes, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(bytes, &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}

func jsonBody(t *testing.T, payload any) string {
	t.Helper()

	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("encode request body: %v", err)
	}
	return string(encoded)
}

func selectDay(t *testing.T, app *fiber.App, state string, side string, index int) pickerView {
	t.Helper()
	body := jsonBody(t, map[string]any{"state": state, "side": side, "index": index})
	return readPickerView(t, doRequest(t, app, http.MethodPost, "/api/picker/select", body))
}

// March 2024 starts on a Friday, so a Sunday-first grid has five leading days.
func marchIndex(day int) int {
	return 5 + day
}

func eventTypes(events []pickerEvent) []string {
	types := make([]string, 0, len(events))
	for _, event := range events {
		types = append(types, event.Type)
	}
	return types
}

func newPickerRequest(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}
