package db

import (
	"sort"
	"time"

	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type PredictionRepository struct {
	database *gorm.DB
}

func NewPredictionRepository(database *gorm.DB) *PredictionRepository {
	return &PredictionRepository{database: database}
}

// HistoryItem is one entry of the merged assessment history. Exactly one of
// Lifestyle/Clinical is set, matching Type.
type HistoryItem struct {
	Type      string                      `json:"type"`
	Lifestyle *models.LifestylePrediction `json:"lifestyle,omitempty"`
	Clinical  *models.ClinicalPrediction  `json:"clinical,omitempty"`
	CreatedAt time.Time                   `json:"created_at"`
}

// InsertLifestyle persists the assessment and, when profile is non-nil, the
// accompanying baseline upsert inside the same transaction. Either both rows
// land or neither does.
func (repo *PredictionRepository) InsertLifestyle(prediction *models.LifestylePrediction, profile *models.HealthProfile) error {
	// The json serializer writes nil collections as SQL NULL, which the
	// NOT NULL columns reject.
	if prediction.RiskFactors == nil {
		prediction.RiskFactors = []models.FactorWeight{}
	}
	if prediction.Recommendations == nil {
		prediction.Recommendations = []string{}
	}

	return translateError(repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prediction).Error; err != nil {
			return err
		}
		if profile != nil {
			return upsertProfileMeasurementsTx(tx, profile)
		}
		return nil
	}))
}

func (repo *PredictionRepository) InsertClinical(prediction *models.ClinicalPrediction) error {
	if prediction.InputData == nil {
		prediction.InputData = map[string]float64{}
	}
	return translateError(repo.database.Create(prediction).Error)
}

func (repo *PredictionRepository) FindLifestyleByReference(userID uint, reference string) (models.LifestylePrediction, error) {
	var prediction models.LifestylePrediction
	err := repo.database.
		Where("user_id = ? AND reference = ?", userID, reference).
		First(&prediction).Error
	if err != nil {
		return models.LifestylePrediction{}, translateError(err)
	}
	return prediction, nil
}

// ListHistory returns the user's predictions in reverse-chronological order.
// typeFilter is "lifestyle", "clinical" or empty for both.
func (repo *PredictionRepository) ListHistory(userID uint, typeFilter string, limit int, offset int) ([]HistoryItem, error) {
	limit = clampHistoryLimit(limit)
	if offset < 0 {
		offset = 0
	}

	items := make([]HistoryItem, 0, limit)

	if typeFilter == "" || typeFilter == models.PredictionTypeLifestyle {
		// Over-fetch so the merged feed can be cut at limit after sorting.
		lifestyle, err := repo.listLifestyle(userID, limit+offset)
		if err != nil {
			return nil, err
		}
		for index := range lifestyle {
			items = append(items, HistoryItem{
				Type:      models.PredictionTypeLifestyle,
				Lifestyle: &lifestyle[index],
				CreatedAt: lifestyle[index].CreatedAt,
			})
		}
	}

	if typeFilter == "" || typeFilter == models.PredictionTypeClinical {
		clinical, err := repo.listClinical(userID, limit+offset)
		if err != nil {
			return nil, err
		}
		for index := range clinical {
			items = append(items, HistoryItem{
				Type:      models.PredictionTypeClinical,
				Clinical:  &clinical[index],
				CreatedAt: clinical[index].CreatedAt,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if offset >= len(items) {
		return []HistoryItem{}, nil
	}
	items = items[offset:]
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (repo *PredictionRepository) listLifestyle(userID uint, max int) ([]models.LifestylePrediction, error) {
	predictions := make([]models.LifestylePrediction, 0, max)
	err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(max).
		Find(&predictions).Error
	if err != nil {
		return nil, translateError(err)
	}
	return predictions, nil
}

func (repo *PredictionRepository) listClinical(userID uint, max int) ([]models.ClinicalPrediction, error) {
	predictions := make([]models.ClinicalPrediction, 0, max)
	err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(max).
		Find(&predictions).Error
	if err != nil {
		return nil, translateError(err)
	}
	return predictions, nil
}

func clampHistoryLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}
