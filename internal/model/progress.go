package model

import (
	"time"
)

// Progress 单个用户在路线图中某一天的完成记录
// swagger:model Progress
type Progress struct {
	UUIDBase
	UserID         string     `gorm:"type:varchar(36);not null;index:idx_progress_user_week_day,unique" json:"userId"`
	Week           int        `gorm:"not null;index:idx_progress_user_week_day,unique" json:"week"`
	Day            string     `gorm:"size:20;not null;index:idx_progress_user_week_day,unique" json:"day"`
	Completed      bool       `gorm:"default:false" json:"completed"`
	CompletionDate *time.Time `json:"completionDate"`
	TimeSpent      int        `gorm:"default:0" json:"timeSpent"` // 分钟
	Notes          string     `gorm:"type:text" json:"notes"`
}

func (Progress) TableName() string {
	return "progress"
}
