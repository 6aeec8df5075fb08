package api

import (
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestProfileUpsertAndFetch(t *testing.T) {
	app := newTestApp(t)
	token := registerTestUser(t, app, "profile@example.com", "pw123456")

	response := performJSON(t, app, fiber.MethodGet, "/profile", token, nil)
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 before upsert, got %d", response.StatusCode)
	}

	response = performJSON(t, app, fiber.MethodPut, "/profile", token, fiber.Map{
		"height_cm":           170,
		"weight_kg":           65,
		"family_history_pcos": true,
	})
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("upsert: expected 200, got %d", response.StatusCode)
	}

	response = performJSON(t, app, fiber.MethodGet, "/profile", token, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("fetch: expected 200, got %d", response.StatusCode)
	}
	profile, _ := decodeJSON(t, response)["profile"].(map[string]any)
	if profile == nil {
		t.Fatal("expected a profile payload")
	}
	if profile["weight_kg"] != 65.0 || profile["family_history_pcos"] != true {
		t.Fatalf("unexpected profile: %v", profile)
	}

	response = performJSON(t, app, fiber.MethodPut, "/profile", token, fiber.Map{
		"height_cm": 300,
		"weight_kg": 65,
	})
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range height, got %d", response.StatusCode)
	}
}

func TestCycleInfoUpsertAndFetch(t *testing.T) {
	app := newTestApp(t)
	token := registerTestUser(t, app, "cycle@example.com", "pw123456")

	response := performJSON(t, app, fiber.MethodPut, "/cycle-info", token, fiber.Map{
		"regularity":       "very_irregular",
		"average_length":   45,
		"last_period_date": "2026-05-01",
	})
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("upsert: expected 200, got %d", response.StatusCode)
	}

	response = performJSON(t, app, fiber.MethodGet, "/cycle-info", token, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("fetch: expected 200, got %d", response.StatusCode)
	}
	info, _ := decodeJSON(t, response)["cycle_info"].(map[string]any)
	if info == nil || info["regularity"] != "very_irregular" || info["average_length"] != 45.0 {
		t.Fatalf("unexpected cycle info: %v", info)
	}

	response = performJSON(t, app, fiber.MethodPut, "/cycle-info", token, fiber.Map{
		"regularity":     "chaotic",
		"average_length": 30,
	})
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad regularity, got %d", response.StatusCode)
	}
}

func TestSymptomLogCreateAndConflict(t *testing.T) {
	app := newTestApp(t)
	token := registerTestUser(t, app, "logs@example.com", "pw123456")

	entry := fiber.Map{
		"date":          "2026-05-02",
		"acne_severity": 4,
		"sleep_quality": 6,
		"period_flow":   "light",
		"period_active": true,
	}
	response := performJSON(t, app, fiber.MethodPost, "/symptom-logs", token, entry)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", response.StatusCode)
	}

	response = performJSON(t, app, fiber.MethodPost, "/symptom-logs", token, entry)
	if response.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for a second log on the same day, got %d", response.StatusCode)
	}

	response = performJSON(t, app, fiber.MethodPost, "/symptom-logs", token, fiber.Map{
		"date":          "2026-05-03",
		"acne_severity": 11,
	})
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range severity, got %d", response.StatusCode)
	}
	body := decodeJSON(t, response)
	if body["field"] != "acne_severity" {
		t.Fatalf("expected acne_severity in error detail, got %v", body["field"])
	}

	response = performJSON(t, app, fiber.MethodGet, "/symptom-logs?from=2026-05-01&to=2026-05-31", token, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("list: expected 200, got %d", response.StatusCode)
	}
	logs, _ := decodeJSON(t, response)["logs"].([]any)
	if len(logs) != 1 {
		t.Fatalf("expected 1 log in range, got %d", len(logs))
	}
}

func TestSymptomLogDefaultsToToday(t *testing.T) {
	app := newTestApp(t)
	token := registerTestUser(t, app, "today@example.com", "pw123456")

	response := performJSON(t, app, fiber.MethodPost, "/symptom-logs", token, fiber.Map{
		"sleep_quality": 6,
	})
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", response.StatusCode)
	}
	logEntry, _ := decodeJSON(t, response)["log"].(map[string]any)
	if logEntry == nil {
		t.Fatal("expected a log payload")
	}
	logDate, _ := logEntry["log_date"].(string)
	today := time.Now().Format("2006-01-02")
	if !strings.HasPrefix(logDate, today) {
		t.Fatalf("expected log date on %s, got %s", today, logDate)
	}

	response = performJSON(t, app, fiber.MethodPost, "/symptom-logs", token, fiber.Map{
		"sleep_quality": 7,
	})
	if response.StatusCode != fiber.StatusConflict {
		t.Fatalf("second default-dated log should land on the same day: expected 409, got %d", response.StatusCode)
	}
}

func TestHealthAndFeatures(t *testing.T) {
	app := newTestApp(t)

	response := performJSON(t, app, fiber.MethodGet, "/health", "", nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("health: expected 200, got %d", response.StatusCode)
	}
	body := decodeJSON(t, response)
	if body["status"] != "healthy" {
		t.Fatalf("unexpected health status: %v", body["status"])
	}

	response = performJSON(t, app, fiber.MethodGet, "/features", "", nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("features: expected 200, got %d", response.StatusCode)
	}
	features := decodeJSON(t, response)
	if features["features"] == nil || features["lifestyle_features"] == nil {
		t.Fatalf("feature listing incomplete: %v", features)
	}
}
