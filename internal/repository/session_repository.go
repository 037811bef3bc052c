package repository

import (
	"dsa_prep_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.UserSession) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindActiveByUser(userID string) ([]model.UserSession, error) {
	var sessions []model.UserSession
	err := r.DB.Where("user_id = ? AND is_active = ?", userID, true).
		Order("last_activity DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) FindByIDAndUser(id, userID string) (*model.UserSession, error) {
	var session model.UserSession
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Deactivate(session *model.UserSession) error {
	session.IsActive = false
	return r.DB.Save(session).Error
}
