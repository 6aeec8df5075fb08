package api

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/models"
)

const minPasswordLength = 6

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))
	credentials.Password = strings.TrimSpace(credentials.Password)
	// full_name is the legacy client field name for display_name.
	if credentials.DisplayName == "" {
		credentials.DisplayName = strings.TrimSpace(credentials.FullName)
	}
	credentials.DisplayName = strings.TrimSpace(credentials.DisplayName)

	if credentials.Email == "" || credentials.Password == "" {
		return credentialsInput{}, errors.New("email and password are required")
	}
	if _, err := mail.ParseAddress(credentials.Email); err != nil {
		return credentialsInput{}, errors.New("invalid email")
	}

	return credentials, nil
}

func validateRegistrationCredentials(credentials credentialsInput) string {
	if len(credentials.Password) < minPasswordLength {
		return "password must be at least 6 characters"
	}
	if credentials.Age != nil && (*credentials.Age < 13 || *credentials.Age > 100) {
		return "age is out of range"
	}
	return ""
}

func validateProfileInput(input profileInput) string {
	if input.HeightCm < 50 || input.HeightCm > 250 {
		return "height_cm must be between 50 and 250"
	}
	if input.WeightKg < 20 || input.WeightKg > 350 {
		return "weight_kg must be between 20 and 350"
	}
	return ""
}

func validateCycleInfoInput(input cycleInfoInput) string {
	if !models.IsValidCycleRegularity(input.Regularity) {
		return "regularity must be regular, irregular or very_irregular"
	}
	if input.AverageLength < models.MinCycleLength || input.AverageLength > models.MaxCycleLength {
		return "average_length must be between 20 and 90"
	}
	return ""
}

// severityFields pairs every bounded questionnaire field with its value so
// range checks report the offending field by name.
func validateSymptomLogInput(input symptomLogInput) (string, string) {
	severityFields := []struct {
		name  string
		value *int
	}{
		{"acne_severity", input.AcneSeverity},
		{"hirsutism_score", input.Hirsutism},
		{"hair_loss_score", input.HairLoss},
		{"fatigue_level", input.FatigueLevel},
		{"mood_swings", input.MoodSwings},
		{"anxiety_level", input.AnxietyLevel},
		{"sleep_quality", input.SleepQuality},
		{"food_cravings", input.FoodCravings},
		{"bloating", input.Bloating},
	}

	for _, field := range severityFields {
		if field.value == nil {
			continue
		}
		if !models.IsValidSeverity(*field.value) {
			return field.name, "severity must be between 0 and 10"
		}
	}

	if input.PeriodFlow != "" && !models.IsValidFlow(strings.ToLower(strings.TrimSpace(input.PeriodFlow))) {
		return "period_flow", "flow must be none, light, medium or heavy"
	}

	return "", ""
}

func parseDateField(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(raw))
}

func intOrDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}
