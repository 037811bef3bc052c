package repository

import (
	"time"

	"dsa_prep_backend/internal/model"

	"gorm.io/gorm"
)

type PomodoroRepository struct {
	DB *gorm.DB
}

func NewPomodoroRepository(db *gorm.DB) *PomodoroRepository {
	return &PomodoroRepository{DB: db}
}

func (r *PomodoroRepository) Create(session *model.PomodoroSession) error {
	return r.DB.Create(session).Error
}

func (r *PomodoroRepository) FindByIDAndUser(id, userID string) (*model.PomodoroSession, error) {
	var session model.PomodoroSession
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *PomodoroRepository) Update(session *model.PomodoroSession) error {
	return r.DB.Save(session).Error
}

func (r *PomodoroRepository) FindByUser(userID string, page, limit int) ([]model.PomodoroSession, int64, error) {
	var sessions []model.PomodoroSession
	var total int64

	query := r.DB.Model(&model.PomodoroSession{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("start_time DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&sessions).Error
	return sessions, total, err
}

// SumCompletedMinutesSince 统计某时间点之后已完成番茄钟的总分钟数
func (r *PomodoroRepository) SumCompletedMinutesSince(userID string, since time.Time) (int, error) {
	var total *int
	err := r.DB.Model(&model.PomodoroSession{}).
		Where("user_id = ? AND completed = ? AND start_time >= ?", userID, true, since).
		Select("SUM(duration)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
