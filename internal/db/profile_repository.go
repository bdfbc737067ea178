package db

import (
	"errors"

	"github.com/terraincognita07/rangepicker/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) List() ([]models.PickerProfile, error) {
	profiles := make([]models.PickerProfile, 0)
	if err := repo.database.Order("name ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (repo *ProfileRepository) FindByName(name string) (models.PickerProfile, bool, error) {
	var profile models.PickerProfile
	err := repo.database.Where("name = ?", name).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PickerProfile{}, false, nil
	}
	if err != nil {
		return models.PickerProfile{}, false, err
	}
	return profile, true, nil
}

// Save inserts a profile without an ID and updates every column otherwise, so cleared
// optional fields are written as NULL.
func (repo *ProfileRepository) Save(profile *models.PickerProfile) error {
	return repo.database.Save(profile).Error
}

func (repo *ProfileRepository) DeleteByName(name string) (bool, error) {
	result := repo.database.Where("name = ?", name).Delete(&models.PickerProfile{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
