package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"dsa_prep_backend/internal/model"
	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo    *repository.UserRepository
	PrefRepo    *repository.PreferenceRepository
	SessionRepo *repository.SessionRepository
	Storage     *StorageService
}

func NewUserService(
	userRepo *repository.UserRepository,
	prefRepo *repository.PreferenceRepository,
	sessionRepo *repository.SessionRepository,
	storage *StorageService,
) *UserService {
	return &UserService{
		UserRepo:    userRepo,
		PrefRepo:    prefRepo,
		SessionRepo: sessionRepo,
		Storage:     storage,
	}
}

// Profile 个人资料及偏好设置
type Profile struct {
	User        *model.User            `json:"user"`
	Preferences *model.UserPreferences `json:"preferences"`
}

func (s *UserService) GetProfile(userID string) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	prefs, err := s.PrefRepo.FindByUser(userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		// 没有偏好记录时返回默认值
		prefs = model.DefaultPreferences(userID)
	}

	return &Profile{User: user, Preferences: prefs}, nil
}

// ProfileUpdate 指针字段区分"未提供"和"设为零值"
type ProfileUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (s *UserService) UpdateProfile(userID string, update ProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil && *update.Email != user.Email {
		existing, err := s.UserRepo.FindByEmail(*update.Email)
		if err == nil && existing.ID != userID {
			return nil, util.ErrEmailRegistered
		} else if err != nil && err != gorm.ErrRecordNotFound {
			return nil, err
		}
		user.Email = *update.Email
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar 保存头像文件并更新用户资料
func (s *UserService) UploadAvatar(ctx context.Context, userID, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", util.ErrUserNotFound
	}

	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, e := range util.AllowedAvatarExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("unsupported avatar file type: %s", ext)
	}

	objectName := fmt.Sprintf("avatars/%s_%d%s", userID, time.Now().Unix(), ext)
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	user.AvatarURL = url
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}
	return url, nil
}

// PreferencesUpdate 偏好设置的部分更新，nil字段保持原值
type PreferencesUpdate struct {
	Theme                *string `json:"theme"`
	Layout               *string `json:"layout"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	EmailNotifications   *bool   `json:"email_notifications"`
	AccessibilityMode    *bool   `json:"accessibility_mode"`
	Language             *string `json:"language"`
}

func (s *UserService) UpdatePreferences(userID string, update PreferencesUpdate) (*model.UserPreferences, error) {
	prefs, err := s.PrefRepo.FindByUser(userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		prefs = model.DefaultPreferences(userID)
		if err := s.PrefRepo.Create(prefs); err != nil {
			return nil, err
		}
	}

	if update.Theme != nil {
		prefs.Theme = *update.Theme
	}
	if update.Layout != nil {
		prefs.Layout = *update.Layout
	}
	if update.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *update.NotificationsEnabled
	}
	if update.EmailNotifications != nil {
		prefs.EmailNotifications = *update.EmailNotifications
	}
	if update.AccessibilityMode != nil {
		prefs.AccessibilityMode = *update.AccessibilityMode
	}
	if update.Language != nil {
		prefs.Language = *update.Language
	}

	if err := s.PrefRepo.Update(prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (s *UserService) ListSessions(userID string) ([]model.UserSession, error) {
	return s.SessionRepo.FindActiveByUser(userID)
}

func (s *UserService) RevokeSession(userID, sessionID string) error {
	session, err := s.SessionRepo.FindByIDAndUser(sessionID, userID)
	if err != nil {
		return util.ErrSessionNotFound
	}
	return s.SessionRepo.Deactivate(session)
}
