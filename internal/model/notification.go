package model

// swagger:model Notification
type Notification struct {
	UUIDBase
	UserID  string `gorm:"type:varchar(36);not null;index" json:"userId"`
	Title   string `gorm:"size:200;not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	Type    string `gorm:"size:50;default:'info'" json:"type"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}

func (Notification) TableName() string {
	return "notifications"
}
