package model

// AIConversation AI辅导问答记录，citations以JSON字符串存储引用资料
// swagger:model AIConversation
type AIConversation struct {
	UUIDBase
	UserID    string `gorm:"type:varchar(36);not null;index" json:"userId"`
	Question  string `gorm:"type:text;not null" json:"question"`
	Answer    string `gorm:"type:text;not null" json:"answer"`
	Citations string `gorm:"type:text" json:"-"`
}

func (AIConversation) TableName() string {
	return "ai_conversations"
}
