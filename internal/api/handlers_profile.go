package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/models"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := handler.repos.Profiles.FindByUserID(currentUserID(c))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "profile not set")
		}
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (handler *Handler) UpsertProfile(c *fiber.Ctx) error {
	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateProfileInput(input); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	profile := models.HealthProfile{
		UserID:                currentUserID(c),
		HeightCm:              input.HeightCm,
		WeightKg:              input.WeightKg,
		FamilyHistoryPCOS:     input.FamilyHistoryPCOS,
		FamilyHistoryDiabetes: input.FamilyHistoryDiabetes,
	}
	if err := handler.repos.Profiles.Upsert(&profile); err != nil {
		return storageError(c, err)
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (handler *Handler) GetCycleInfo(c *fiber.Ctx) error {
	info, err := handler.repos.CycleInfos.FindByUserID(currentUserID(c))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "cycle info not set")
		}
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"cycle_info": info})
}

func (handler *Handler) UpsertCycleInfo(c *fiber.Ctx) error {
	input := cycleInfoInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateCycleInfoInput(input); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	info := models.CycleInfo{
		UserID:        currentUserID(c),
		Regularity:    input.Regularity,
		AverageLength: input.AverageLength,
	}
	if input.LastPeriodDate != "" {
		parsed, err := parseDateField(input.LastPeriodDate)
		if err != nil {
			return fieldError(c, "last_period_date", "date must be formatted YYYY-MM-DD")
		}
		info.LastPeriodDate = &parsed
	}

	if err := handler.repos.CycleInfos.Upsert(&info); err != nil {
		return storageError(c, err)
	}

	return c.JSON(fiber.Map{"cycle_info": info})
}
