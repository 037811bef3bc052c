package model

import (
	"time"
)

// UserSession 登录会话审计记录
// swagger:model UserSession
type UserSession struct {
	UUIDBase
	UserID       string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	DeviceInfo   string    `gorm:"size:255" json:"deviceInfo"`
	IPAddress    string    `gorm:"size:45" json:"ipAddress"`
	LoginTime    time.Time `json:"loginTime"`
	LastActivity time.Time `json:"lastActivity"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
}

func (UserSession) TableName() string {
	return "user_sessions"
}
