package model

import (
	"time"
)

// swagger:model PasswordReset
type PasswordReset struct {
	UUIDBase
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	Token     string    `gorm:"size:255;unique;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
