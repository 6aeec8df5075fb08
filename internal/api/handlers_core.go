package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/scoring"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	databaseConnected := false
	if sqlDB, err := handler.database.DB(); err == nil {
		databaseConnected = sqlDB.Ping() == nil
	}

	return c.JSON(fiber.Map{
		"status":             "healthy",
		"database_connected": databaseConnected,
		"model_version":      scoring.ModelVersion,
		"features_count":     len(scoring.ClinicalFeatureNames()),
	})
}

func (handler *Handler) Features(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"features":           scoring.ClinicalFeatureNames(),
		"feature_info":       scoring.FeatureCatalog(),
		"lifestyle_features": scoring.LifestyleFeatureNames(),
	})
}
