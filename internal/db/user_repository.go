package db

import (
	"time"

	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) Create(user *models.User) error {
	return translateError(repo.database.Create(user).Error)
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, translateError(err)
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, translateError(err)
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) TouchLastLogin(userID uint, when time.Time) error {
	return translateError(repo.database.Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_login_at", when).Error)
}

// DeleteAccount removes the user row; dependent profile, cycle, log and
// prediction rows go with it through the schema's ON DELETE CASCADE.
func (repo *UserRepository) DeleteAccount(userID uint) error {
	result := repo.database.Delete(&models.User{}, userID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
