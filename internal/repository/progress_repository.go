package repository

import (
	"dsa_prep_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUser(userID string) ([]model.Progress, error) {
	var records []model.Progress
	err := r.DB.Where("user_id = ?", userID).
		Order("week ASC, day ASC").
		Find(&records).Error
	return records, err
}

func (r *ProgressRepository) FindByUserWeekDay(tx *gorm.DB, userID string, week int, day string) (*model.Progress, error) {
	if tx == nil {
		tx = r.DB
	}
	var record model.Progress
	err := tx.Where("user_id = ? AND week = ? AND day = ?", userID, week, day).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
