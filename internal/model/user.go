package model

import (
	"time"
)

// swagger:model User
type User struct {
	UUIDBase
	Name           string     `gorm:"size:100;not null" json:"name"`
	Email          string     `gorm:"size:100;unique;not null" json:"email"`
	Password       string     `gorm:"size:100;not null" json:"-"`
	AvatarURL      string     `gorm:"size:255" json:"avatarUrl"`
	IsVerified     bool       `gorm:"default:false" json:"isVerified"`
	LastLogin      *time.Time `json:"lastLogin"`
	CurrentStreak  int        `gorm:"default:0" json:"currentStreak"`
	LongestStreak  int        `gorm:"default:0" json:"longestStreak"`
	TotalStudyTime int        `gorm:"default:0" json:"totalStudyTime"` // 累计学习分钟数
	LastStreakDate *time.Time `gorm:"type:date" json:"lastStreakDate"`
}

func (User) TableName() string {
	return "users"
}
