package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/models"
)

func (handler *Handler) CreateSymptomLog(c *fiber.Ctx) error {
	input := symptomLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if field, reason := validateSymptomLogInput(input); field != "" {
		return fieldError(c, field, reason)
	}

	// Calendar day, not a 24h truncation of absolute time: the latter lands
	// on the wrong day for non-UTC server clocks.
	now := time.Now()
	logDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if input.Date != "" {
		parsed, err := parseDateField(input.Date)
		if err != nil {
			return fieldError(c, "date", "date must be formatted YYYY-MM-DD")
		}
		logDate = parsed
	}

	flow := strings.ToLower(strings.TrimSpace(input.PeriodFlow))
	if flow == "" {
		flow = models.FlowNone
	}

	entry := models.SymptomLog{
		UserID:       currentUserID(c),
		LogDate:      logDate,
		AcneSeverity: intOrDefault(input.AcneSeverity, 0),
		Hirsutism:    intOrDefault(input.Hirsutism, 0),
		HairLoss:     intOrDefault(input.HairLoss, 0),
		FatigueLevel: intOrDefault(input.FatigueLevel, 0),
		MoodSwings:   intOrDefault(input.MoodSwings, 0),
		AnxietyLevel: intOrDefault(input.AnxietyLevel, 0),
		SleepQuality: intOrDefault(input.SleepQuality, models.DefaultSleepQuality),
		FoodCravings: intOrDefault(input.FoodCravings, 0),
		Bloating:     intOrDefault(input.Bloating, 0),
		PeriodFlow:   flow,
		PeriodActive: input.PeriodActive,
	}

	if err := handler.repos.SymptomLogs.Append(&entry); err != nil {
		return storageError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "symptom log saved",
		"log":     entry,
	})
}

func (handler *Handler) ListSymptomLogs(c *fiber.Ctx) error {
	userID := currentUserID(c)

	fromRaw := c.Query("from")
	toRaw := c.Query("to")
	if fromRaw != "" && toRaw != "" {
		from, err := parseDateField(fromRaw)
		if err != nil {
			return fieldError(c, "from", "date must be formatted YYYY-MM-DD")
		}
		to, err := parseDateField(toRaw)
		if err != nil {
			return fieldError(c, "to", "date must be formatted YYYY-MM-DD")
		}
		logs, err := handler.repos.SymptomLogs.ListRange(userID, from, to)
		if err != nil {
			return storageError(c, err)
		}
		return c.JSON(fiber.Map{"logs": logs})
	}

	logs, err := handler.repos.SymptomLogs.ListRecent(userID, c.QueryInt("limit", 30))
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"logs": logs})
}
