package service

import (
	"time"

	"dsa_prep_backend/internal/model"
	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/util"
	"dsa_prep_backend/pkg/monitoring"
)

type PomodoroService struct {
	PomodoroRepo *repository.PomodoroRepository
}

func NewPomodoroService(pomodoroRepo *repository.PomodoroRepository) *PomodoroService {
	return &PomodoroService{PomodoroRepo: pomodoroRepo}
}

// Start 开启一个番茄钟，duration为计划分钟数
func (s *PomodoroService) Start(userID string, duration int, topic, sessionType string) (*model.PomodoroSession, error) {
	if duration <= 0 {
		duration = 25
	}
	if sessionType == "" {
		sessionType = "study"
	}

	session := &model.PomodoroSession{
		UserID:      userID,
		StartTime:   time.Now().UTC(),
		Duration:    duration,
		Topic:       topic,
		SessionType: sessionType,
	}
	if err := s.PomodoroRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Complete 结束番茄钟。入账时长取计划时长和实际耗时的较小值，
// 防止后台挂机刷学习时长。返回实际耗时分钟数。
func (s *PomodoroService) Complete(userID, sessionID string) (*model.PomodoroSession, float64, error) {
	session, err := s.PomodoroRepo.FindByIDAndUser(sessionID, userID)
	if err != nil {
		return nil, 0, util.ErrSessionNotFound
	}

	alreadyCompleted := session.Completed

	now := time.Now().UTC()
	session.EndTime = &now
	session.Completed = true

	actualMinutes := now.Sub(session.StartTime).Minutes()
	if int(actualMinutes) < session.Duration {
		session.Duration = int(actualMinutes)
	}

	if err := s.PomodoroRepo.Update(session); err != nil {
		return nil, 0, err
	}

	// 重复完成不再重复计入指标
	if !alreadyCompleted {
		monitoring.PomodoroMinutes.Add(float64(session.Duration))
	}
	return session, actualMinutes, nil
}

func (s *PomodoroService) History(userID string, page, limit int) ([]model.PomodoroSession, int64, error) {
	return s.PomodoroRepo.FindByUser(userID, page, limit)
}
