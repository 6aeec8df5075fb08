package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/cyra/internal/models"
	"github.com/terraincognita07/cyra/internal/scoring"
)

// parseFeaturePayload reads the request body as a flat name→value record.
// Every value must be numeric; shape errors surface as 400 before scoring.
func parseFeaturePayload(c *fiber.Ctx) (map[string]float64, error) {
	features := map[string]float64{}
	if err := c.BodyParser(&features); err != nil {
		return nil, err
	}
	return features, nil
}

func (handler *Handler) LifestyleAssessment(c *fiber.Ctx) error {
	features, err := parseFeaturePayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "body must be a flat JSON object of numeric fields")
	}

	// height/weight ride along for the baseline profile; they are not
	// scored features.
	heightCm, hasHeight := features["height"]
	weightKg, hasWeight := features["weight"]
	delete(features, "height")
	delete(features, "weight")

	assessment, err := scoring.ScoreLifestyle(features)
	if err != nil {
		return scoringError(c, err)
	}

	var profile *models.HealthProfile
	if hasHeight && hasWeight {
		if heightCm < 50 || heightCm > 250 || weightKg < 20 || weightKg > 350 {
			return fieldError(c, "height", "height/weight outside accepted range")
		}
		profile = &models.HealthProfile{
			UserID:            currentUserID(c),
			HeightCm:          heightCm,
			WeightKg:          weightKg,
			FamilyHistoryPCOS: features[scoring.FeatureFamilyHistory] == 1,
		}
	}

	prediction := models.LifestylePrediction{
		Reference:       uuid.NewString(),
		UserID:          currentUserID(c),
		RiskScore:       assessment.Score,
		RiskLevel:       assessment.Level,
		Confidence:      assessment.Confidence,
		RiskFactors:     assessment.Factors,
		Recommendations: assessment.Recommendations,
		ModelVersion:    scoring.ModelVersion,
	}
	if err := handler.repos.Predictions.InsertLifestyle(&prediction, profile); err != nil {
		return storageError(c, err)
	}

	return c.JSON(fiber.Map{
		"reference":           prediction.Reference,
		"pcos_risk":           boolToBinary(assessment.Score >= 0.5),
		"probability":         assessment.Score,
		"healthy_probability": 1 - assessment.Score,
		"risk_level":          assessment.Level,
		"confidence":          assessment.Confidence,
		"risk_factors":        assessment.Factors,
		"recommendations":     assessment.Recommendations,
		"model_version":       prediction.ModelVersion,
		"created_at":          prediction.CreatedAt,
		"input_features":      features,
	})
}

func (handler *Handler) ClinicalAssessment(c *fiber.Ctx) error {
	features, err := parseFeaturePayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "body must be a flat JSON object of numeric fields")
	}

	assessment, err := scoring.ScoreClinical(features)
	if err != nil {
		return scoringError(c, err)
	}

	prediction := models.ClinicalPrediction{
		Reference:        uuid.NewString(),
		UserID:           currentUserID(c),
		PredictionResult: assessment.Result,
		Probability:      assessment.Probability,
		RiskLevel:        assessment.Level,
		InputData:        features,
		ModelVersion:     scoring.ModelVersion,
	}
	if err := handler.repos.Predictions.InsertClinical(&prediction); err != nil {
		return storageError(c, err)
	}

	predictionText := "Healthy"
	if assessment.Result == 1 {
		predictionText = "PCOS Likely"
	}

	return c.JSON(fiber.Map{
		"reference":           prediction.Reference,
		"pcos_risk":           assessment.Result,
		"probability":         assessment.Probability,
		"healthy_probability": 1 - assessment.Probability,
		"risk_level":          assessment.Level,
		"prediction_text":     predictionText,
		"confidence":          assessment.Confidence,
		"model_version":       prediction.ModelVersion,
		"created_at":          prediction.CreatedAt,
		"input_features":      features,
	})
}

func (handler *Handler) History(c *fiber.Ctx) error {
	typeFilter := c.Query("type")
	if typeFilter != "" &&
		typeFilter != models.PredictionTypeLifestyle &&
		typeFilter != models.PredictionTypeClinical {
		return fieldError(c, "type", "type must be lifestyle or clinical")
	}

	items, err := handler.repos.Predictions.ListHistory(
		currentUserID(c),
		typeFilter,
		c.QueryInt("limit", 0),
		c.QueryInt("offset", 0),
	)
	if err != nil {
		return storageError(c, err)
	}

	return c.JSON(fiber.Map{"predictions": items})
}

func boolToBinary(value bool) int {
	if value {
		return 1
	}
	return 0
}
