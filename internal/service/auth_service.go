package service

import (
	"time"

	"dsa_prep_backend/internal/config"
	"dsa_prep_backend/internal/model"
	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/util"
	"dsa_prep_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo     *repository.UserRepository
	PrefRepo     *repository.PreferenceRepository
	SessionRepo  *repository.SessionRepository
	ResetRepo    *repository.PasswordResetRepository
	Notification *NotificationService
	Mail         *MailService
	Cfg          *config.Config
}

func NewAuthService(
	userRepo *repository.UserRepository,
	prefRepo *repository.PreferenceRepository,
	sessionRepo *repository.SessionRepository,
	resetRepo *repository.PasswordResetRepository,
	notification *NotificationService,
	mail *MailService,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		UserRepo:     userRepo,
		PrefRepo:     prefRepo,
		SessionRepo:  sessionRepo,
		ResetRepo:    resetRepo,
		Notification: notification,
		Mail:         mail,
		Cfg:          cfg,
	}
}

// TokenPair 一次签发的访问令牌和刷新令牌
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s *AuthService) issueTokens(user *model.User) (*TokenPair, error) {
	access, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, util.TokenTypeAccess, s.Cfg.JWT.AccessExpireTime)
	if err != nil {
		return nil, err
	}
	refresh, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, util.TokenTypeRefresh, s.Cfg.JWT.RefreshExpireTime)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Register 创建用户及默认偏好设置，返回令牌对
func (s *AuthService) Register(name, email, password string) (*model.User, *TokenPair, error) {
	exists, err := s.UserRepo.ExistsByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, util.ErrEmailRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, nil, err
	}

	if err := s.PrefRepo.Create(model.DefaultPreferences(user.ID)); err != nil {
		logger.Log.Error("Failed to create default preferences",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}

	welcome := "Welcome! Your 14-week study roadmap is ready. Start with week 1 to build your streak."
	if err := s.Notification.Notify(user.ID, "Welcome aboard", welcome, "info"); err != nil {
		logger.Log.Error("Failed to create welcome notification",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Login 校验凭证，更新最近登录时间并记录登录会话
func (s *AuthService) Login(email, password, deviceInfo, ipAddress string) (*model.User, *TokenPair, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, util.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := s.UserRepo.Update(user); err != nil {
		return nil, nil, err
	}

	session := &model.UserSession{
		UserID:       user.ID,
		DeviceInfo:   deviceInfo,
		IPAddress:    ipAddress,
		LoginTime:    now,
		LastActivity: now,
		IsActive:     true,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		logger.Log.Error("Failed to record login session",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh 用刷新令牌换取新的访问令牌
func (s *AuthService) Refresh(claims *util.Claims) (string, error) {
	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return "", util.ErrUserNotFound
	}
	return util.GenerateJWT(user, s.Cfg.JWT.Secret, util.TokenTypeAccess, s.Cfg.JWT.AccessExpireTime)
}

// ForgotPassword 生成重置令牌并发邮件，邮箱不存在时静默返回防止枚举
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	token, err := util.GenerateRandomToken(32)
	if err != nil {
		return err
	}

	reset := &model.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	if err := s.ResetRepo.Create(reset); err != nil {
		return err
	}

	go s.Mail.SendPasswordReset(user.Email, token)
	return nil
}

// ResetPassword 校验令牌并更新密码，令牌一次性
func (s *AuthService) ResetPassword(token, newPassword string) error {
	reset, err := s.ResetRepo.FindValidByToken(token)
	if err != nil {
		return util.ErrInvalidResetToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.UserRepo.UpdatePassword(reset.UserID, string(hashedPassword)); err != nil {
		return err
	}

	return s.ResetRepo.MarkUsed(reset)
}
