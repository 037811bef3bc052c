package model

import (
	"time"
)

// swagger:model PomodoroSession
type PomodoroSession struct {
	UUIDBase
	UserID      string     `gorm:"type:varchar(36);not null;index" json:"userId"`
	StartTime   time.Time  `gorm:"not null" json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Duration    int        `gorm:"not null" json:"duration"` // 分钟
	Completed   bool       `gorm:"default:false" json:"completed"`
	Topic       string     `gorm:"size:200" json:"topic"`
	SessionType string     `gorm:"size:20;default:'study'" json:"sessionType"`
}

func (PomodoroSession) TableName() string {
	return "pomodoro_sessions"
}
