package repository

import (
	"dsa_prep_backend/internal/model"

	"gorm.io/gorm"
)

type ConversationRepository struct {
	DB *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{DB: db}
}

func (r *ConversationRepository) Create(conv *model.AIConversation) error {
	return r.DB.Create(conv).Error
}

func (r *ConversationRepository) FindByUser(userID string, page, limit int) ([]model.AIConversation, int64, error) {
	var conversations []model.AIConversation
	var total int64

	query := r.DB.Model(&model.AIConversation{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&conversations).Error
	return conversations, total, err
}
