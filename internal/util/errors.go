package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrInvalidCredentials   = errors.New("邮箱或密码错误")
	ErrNoteNotFound         = errors.New("note not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrInvalidDay           = errors.New("invalid week or day number")
)
