package service

import (
	"fmt"

	"dsa_prep_backend/internal/config"
	"dsa_prep_backend/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// MailService SMTP邮件发送
type MailService struct {
	cfg config.MailConfig
}

func NewMailService(cfg config.MailConfig) *MailService {
	return &MailService{cfg: cfg}
}

func (s *MailService) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	from := s.cfg.From
	if from == "" {
		from = s.cfg.SMTPUser
	}
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPass)
	return d.DialAndSend(m)
}

// SendPasswordReset 发送重置密码邮件，失败只记录日志不中断请求
func (s *MailService) SendPasswordReset(to, token string) {
	resetLink := fmt.Sprintf("%s?token=%s", s.cfg.ResetURL, token)
	body := fmt.Sprintf(`
		<h2>Password Reset Request</h2>
		<p>Click the link below to reset your password:</p>
		<a href="%s">Reset Password</a>
		<p>This link expires in 1 hour.</p>
	`, resetLink)

	if err := s.Send(to, "Password Reset Request", body); err != nil {
		logger.Log.Error("Failed to send password reset email",
			zap.String("to", to),
			zap.Error(err))
	}
}
