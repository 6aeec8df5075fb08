package db

import (
	"errors"

	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByUserID(userID uint) (models.HealthProfile, error) {
	var profile models.HealthProfile
	if err := repo.database.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.HealthProfile{}, translateError(err)
	}
	return profile, nil
}

// Upsert keeps at most one baseline profile per user. BMI is always
// recomputed from the stored height and weight.
func (repo *ProfileRepository) Upsert(profile *models.HealthProfile) error {
	return translateError(repo.database.Transaction(func(tx *gorm.DB) error {
		return upsertProfileTx(tx, profile)
	}))
}

func upsertProfileTx(tx *gorm.DB, profile *models.HealthProfile) error {
	return saveProfileTx(tx, profile, false)
}

// upsertProfileMeasurementsTx is the assessment sidecar path: it only writes
// height/weight/bmi on update, leaving stored family-history flags alone.
func upsertProfileMeasurementsTx(tx *gorm.DB, profile *models.HealthProfile) error {
	return saveProfileTx(tx, profile, true)
}

func saveProfileTx(tx *gorm.DB, profile *models.HealthProfile, measurementsOnly bool) error {
	profile.BMI = models.ComputeBMI(profile.HeightCm, profile.WeightKg)

	var existing models.HealthProfile
	err := tx.Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt

	columns := map[string]any{
		"height_cm": profile.HeightCm,
		"weight_kg": profile.WeightKg,
		"bmi":       profile.BMI,
	}
	if measurementsOnly {
		profile.FamilyHistoryPCOS = existing.FamilyHistoryPCOS
		profile.FamilyHistoryDiabetes = existing.FamilyHistoryDiabetes
	} else {
		columns["family_history_pcos"] = profile.FamilyHistoryPCOS
		columns["family_history_diabetes"] = profile.FamilyHistoryDiabetes
	}
	return tx.Model(&existing).Updates(columns).Error
}
