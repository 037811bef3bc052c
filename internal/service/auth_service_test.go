package service

import (
	"testing"
	"time"

	"dsa_prep_backend/internal/config"
	"dsa_prep_backend/internal/model"
	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			AccessExpireTime:  time.Hour,
			RefreshExpireTime: 24 * time.Hour,
		},
	}
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db := newTestDB(t)
	cfg := testConfig()
	s := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewPreferenceRepository(db),
		repository.NewSessionRepository(db),
		repository.NewPasswordResetRepository(db),
		NewNotificationService(repository.NewNotificationRepository(db)),
		NewMailService(cfg.Mail),
		cfg,
	)
	return s, db
}

func TestRegister(t *testing.T) {
	s, db := newAuthService(t)

	user, tokens, err := s.Register("Alice", "alice@test.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "password123", user.Password)
	require.NotNil(t, tokens)

	// 双令牌各自可解析且类型正确
	access, err := util.ParseJWT(tokens.AccessToken, s.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, util.TokenTypeAccess, access.TokenType)
	assert.Equal(t, user.ID, access.UserID)

	refresh, err := util.ParseJWT(tokens.RefreshToken, s.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, util.TokenTypeRefresh, refresh.TokenType)

	// 注册时写入默认偏好设置
	var prefs model.UserPreferences
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&prefs).Error)
	assert.Equal(t, "light", prefs.Theme)

	// 以及一条欢迎通知
	var notif model.Notification
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&notif).Error)
	assert.Equal(t, "info", notif.Type)
	assert.False(t, notif.IsRead)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _ := newAuthService(t)

	_, _, err := s.Register("Alice", "alice@test.com", "password123")
	require.NoError(t, err)

	_, _, err = s.Register("Impostor", "alice@test.com", "otherpassword")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLogin(t *testing.T) {
	s, db := newAuthService(t)
	createTestUser(t, db, "bob@test.com", "password123")

	user, tokens, err := s.Login("bob@test.com", "password123", "Firefox on Linux", "10.0.0.1")
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotNil(t, user.LastLogin)

	// 登录会话落库
	var session model.UserSession
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&session).Error)
	assert.Equal(t, "Firefox on Linux", session.DeviceInfo)
	assert.Equal(t, "10.0.0.1", session.IPAddress)
	assert.True(t, session.IsActive)
}

func TestLoginInvalidCredentials(t *testing.T) {
	s, db := newAuthService(t)
	createTestUser(t, db, "bob@test.com", "password123")

	_, _, err := s.Login("bob@test.com", "wrongpassword", "", "")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	// 未注册邮箱返回同样的错误，不暴露账号是否存在
	_, _, err = s.Login("nobody@test.com", "password123", "", "")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	s, db := newAuthService(t)
	user := createTestUser(t, db, "bob@test.com", "password123")

	access, err := s.Refresh(&util.Claims{UserID: user.ID})
	require.NoError(t, err)

	claims, err := util.ParseJWT(access, s.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, util.TokenTypeAccess, claims.TokenType)

	_, err = s.Refresh(&util.Claims{UserID: "ghost"})
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	s, db := newAuthService(t)

	require.NoError(t, s.ForgotPassword("nobody@test.com"))

	var count int64
	require.NoError(t, db.Model(&model.PasswordReset{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPasswordResetFlow(t *testing.T) {
	s, db := newAuthService(t)
	user := createTestUser(t, db, "bob@test.com", "password123")

	require.NoError(t, s.ForgotPassword("bob@test.com"))

	var reset model.PasswordReset
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&reset).Error)
	assert.False(t, reset.Used)
	assert.True(t, reset.ExpiresAt.After(time.Now().UTC()))

	require.NoError(t, s.ResetPassword(reset.Token, "newpassword456"))

	_, _, err := s.Login("bob@test.com", "password123", "", "")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, _, err = s.Login("bob@test.com", "newpassword456", "", "")
	assert.NoError(t, err)

	// 令牌一次性
	assert.ErrorIs(t, s.ResetPassword(reset.Token, "thirdpassword"), util.ErrInvalidResetToken)
}

func TestResetPasswordBadToken(t *testing.T) {
	s, _ := newAuthService(t)
	assert.ErrorIs(t, s.ResetPassword("bogus-token", "whatever123"), util.ErrInvalidResetToken)
}
