package api

import (
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func TestRegisterAndLogin(t *testing.T) {
	app := newTestApp(t)

	response := performJSON(t, app, fiber.MethodPost, "/auth/register", "", fiber.Map{
		"email":        "user@example.com",
		"password":     "pw123456",
		"display_name": "Alex",
	})
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", response.StatusCode)
	}
	body := decodeJSON(t, response)
	if body["token"] == "" || body["token"] == nil {
		t.Fatal("expected a token in the register response")
	}
	user, _ := body["user"].(map[string]any)
	if user == nil || user["email"] != "user@example.com" {
		t.Fatalf("unexpected user payload: %v", body["user"])
	}

	response = performJSON(t, app, fiber.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "USER@example.com",
		"password": "pw123456",
	})
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on login, got %d", response.StatusCode)
	}
	body = decodeJSON(t, response)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a token in the login response")
	}

	response = performJSON(t, app, fiber.MethodGet, "/auth/me", token, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on /auth/me, got %d", response.StatusCode)
	}
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name    string
		payload fiber.Map
	}{
		{"missing password", fiber.Map{"email": "a@example.com"}},
		{"short password", fiber.Map{"email": "a@example.com", "password": "pw1"}},
		{"bad email", fiber.Map{"email": "not-an-address", "password": "pw123456"}},
	}
	for _, testCase := range cases {
		response := performJSON(t, app, fiber.MethodPost, "/auth/register", "", testCase.payload)
		if response.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", testCase.name, response.StatusCode)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	registerTestUser(t, app, "taken@example.com", "pw123456")

	response := performJSON(t, app, fiber.MethodPost, "/auth/register", "", fiber.Map{
		"email":    "taken@example.com",
		"password": "pw123456",
	})
	if response.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", response.StatusCode)
	}
	body := decodeJSON(t, response)
	if body["error"] != "email already registered" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	registerTestUser(t, app, "login@example.com", "pw123456")

	response := performJSON(t, app, fiber.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "login@example.com",
		"password": "wrong-password",
	})
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", response.StatusCode)
	}
	body := decodeJSON(t, response)
	if body["error"] != "invalid email or password" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestAuthRequiredRejectsBadTokens(t *testing.T) {
	app := newTestApp(t)

	response := performJSON(t, app, fiber.MethodGet, "/auth/me", "", nil)
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", response.StatusCode)
	}
	if body := decodeJSON(t, response); body["error"] != "token is missing" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}

	response = performJSON(t, app, fiber.MethodGet, "/auth/me", "not-a-jwt", nil)
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", response.StatusCode)
	}
	if body := decodeJSON(t, response); body["error"] != "invalid token" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}

	forged := signedTestToken(t, 1, "other-secret", time.Hour)
	response = performJSON(t, app, fiber.MethodGet, "/auth/me", forged, nil)
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("forged token: expected 401, got %d", response.StatusCode)
	}
}

func TestAuthRequiredRejectsNonBearerScheme(t *testing.T) {
	app := newTestApp(t)
	token := registerTestUser(t, app, "scheme@example.com", "pw123456")

	request := httptest.NewRequest(fiber.MethodGet, "/auth/me", nil)
	request.Header.Set(fiber.HeaderAuthorization, token)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET /auth/me: %v", err)
	}
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("prefix-less header: expected 401, got %d", response.StatusCode)
	}
	if body := decodeJSON(t, response); body["error"] != "token is missing" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	app := newTestApp(t)
	registerTestUser(t, app, "expired@example.com", "pw123456")

	expired := signedTestToken(t, 1, testSecret, -time.Hour)
	response := performJSON(t, app, fiber.MethodGet, "/auth/me", expired, nil)
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", response.StatusCode)
	}
	body := decodeJSON(t, response)
	if body["error"] != "token has expired" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestDeleteAccount(t *testing.T) {
	app := newTestApp(t)
	token := registerTestUser(t, app, "gone@example.com", "pw123456")

	response := performJSON(t, app, fiber.MethodDelete, "/auth/account", token, nil)
	if response.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", response.StatusCode)
	}

	response = performJSON(t, app, fiber.MethodGet, "/auth/me", token, nil)
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 after deletion, got %d", response.StatusCode)
	}
}

func signedTestToken(t *testing.T, userID uint, secret string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return signed
}
