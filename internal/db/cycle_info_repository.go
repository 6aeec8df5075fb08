package db

import (
	"errors"

	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type CycleInfoRepository struct {
	database *gorm.DB
}

func NewCycleInfoRepository(database *gorm.DB) *CycleInfoRepository {
	return &CycleInfoRepository{database: database}
}

func (repo *CycleInfoRepository) FindByUserID(userID uint) (models.CycleInfo, error) {
	var info models.CycleInfo
	if err := repo.database.Where("user_id = ?", userID).First(&info).Error; err != nil {
		return models.CycleInfo{}, translateError(err)
	}
	return info, nil
}

func (repo *CycleInfoRepository) Upsert(info *models.CycleInfo) error {
	return translateError(repo.database.Transaction(func(tx *gorm.DB) error {
		var existing models.CycleInfo
		err := tx.Where("user_id = ?", info.UserID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(info).Error
		}
		if err != nil {
			return err
		}

		info.ID = existing.ID
		info.CreatedAt = existing.CreatedAt
		return tx.Model(&existing).Updates(map[string]any{
			"regularity":       info.Regularity,
			"average_length":   info.AverageLength,
			"last_period_date": info.LastPeriodDate,
		}).Error
	}))
}
