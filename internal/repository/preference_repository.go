package repository

import (
	"dsa_prep_backend/internal/model"

	"gorm.io/gorm"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

func (r *PreferenceRepository) Create(prefs *model.UserPreferences) error {
	return r.DB.Create(prefs).Error
}

func (r *PreferenceRepository) FindByUser(userID string) (*model.UserPreferences, error) {
	var prefs model.UserPreferences
	err := r.DB.Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *PreferenceRepository) Update(prefs *model.UserPreferences) error {
	return r.DB.Save(prefs).Error
}
