package model

// swagger:model UserPreferences
type UserPreferences struct {
	UUIDBase
	UserID               string `gorm:"type:varchar(36);unique;not null" json:"userId"`
	Theme                string `gorm:"size:20;default:'light'" json:"theme"`
	Layout               string `gorm:"size:20;default:'default'" json:"layout"`
	NotificationsEnabled bool   `gorm:"default:true" json:"notificationsEnabled"`
	EmailNotifications   bool   `gorm:"default:true" json:"emailNotifications"`
	AccessibilityMode    bool   `gorm:"default:false" json:"accessibilityMode"`
	Language             string `gorm:"size:10;default:'en'" json:"language"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}

// DefaultPreferences 返回新用户的默认偏好设置
func DefaultPreferences(userID string) *UserPreferences {
	return &UserPreferences{
		UserID:               userID,
		Theme:                "light",
		Layout:               "default",
		NotificationsEnabled: true,
		EmailNotifications:   true,
		AccessibilityMode:    false,
		Language:             "en",
	}
}
