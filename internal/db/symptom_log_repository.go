package db

import (
	"time"

	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type SymptomLogRepository struct {
	database *gorm.DB
}

func NewSymptomLogRepository(database *gorm.DB) *SymptomLogRepository {
	return &SymptomLogRepository{database: database}
}

// Append inserts one self-report row. The unique (user_id, log_date) index
// rejects a second report for the same day with ErrConflict.
func (repo *SymptomLogRepository) Append(entry *models.SymptomLog) error {
	return translateError(repo.database.Create(entry).Error)
}

func (repo *SymptomLogRepository) ListRange(userID uint, from time.Time, to time.Time) ([]models.SymptomLog, error) {
	logs := make([]models.SymptomLog, 0)
	err := repo.database.
		Where("user_id = ? AND log_date >= ? AND log_date <= ?", userID, from, to).
		Order("log_date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return logs, nil
}

func (repo *SymptomLogRepository) ListRecent(userID uint, limit int) ([]models.SymptomLog, error) {
	if limit <= 0 {
		limit = 30
	}
	logs := make([]models.SymptomLog, 0, limit)
	err := repo.database.
		Where("user_id = ?", userID).
		Order("log_date DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return logs, nil
}
