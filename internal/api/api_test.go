package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/db"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cyra_test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler := NewHandler(database, testSecret, time.Hour, bcrypt.MinCost)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func registerTestUser(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()
	response := performJSON(t, app, fiber.MethodPost, "/auth/register", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", email, response.StatusCode)
	}

	body := decodeJSON(t, response)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("register response missing token")
	}
	return token
}
