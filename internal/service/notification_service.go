package service

import (
	"dsa_prep_backend/internal/model"
	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/util"
)

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{NotificationRepo: notificationRepo}
}

func (s *NotificationService) Notify(userID, title, message, notifType string) error {
	n := &model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
	}
	return s.NotificationRepo.Create(n)
}

func (s *NotificationService) List(userID string, unreadOnly bool, page, limit int) ([]model.Notification, int64, error) {
	return s.NotificationRepo.FindByUser(userID, unreadOnly, page, limit)
}

func (s *NotificationService) MarkRead(userID, notificationID string) error {
	n, err := s.NotificationRepo.FindByIDAndUser(notificationID, userID)
	if err != nil {
		return util.ErrNotificationNotFound
	}
	return s.NotificationRepo.MarkRead(n)
}

func (s *NotificationService) MarkAllRead(userID string) error {
	return s.NotificationRepo.MarkAllRead(userID)
}

func (s *NotificationService) UnreadCount(userID string) (int64, error) {
	return s.NotificationRepo.CountUnread(userID)
}
