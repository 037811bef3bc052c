package repository

import (
	"time"

	"dsa_prep_backend/internal/model"

	"gorm.io/gorm"
)

type PasswordResetRepository struct {
	DB *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{DB: db}
}

func (r *PasswordResetRepository) Create(reset *model.PasswordReset) error {
	return r.DB.Create(reset).Error
}

// FindValidByToken 查找未使用且未过期的重置记录
func (r *PasswordResetRepository) FindValidByToken(token string) (*model.PasswordReset, error) {
	var reset model.PasswordReset
	err := r.DB.Where("token = ? AND used = ? AND expires_at > ?", token, false, time.Now().UTC()).
		First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResetRepository) MarkUsed(reset *model.PasswordReset) error {
	reset.Used = true
	return r.DB.Save(reset).Error
}
