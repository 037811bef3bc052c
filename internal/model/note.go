package model

// Note 学习笔记，tags以逗号分隔存储
// swagger:model Note
type Note struct {
	UUIDBase
	UserID  string `gorm:"type:varchar(36);not null;index" json:"userId"`
	Title   string `gorm:"size:200;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	Tags    string `gorm:"size:500" json:"-"`
	Week    int    `json:"week"`
	Day     string `gorm:"size:20" json:"day"`
}

func (Note) TableName() string {
	return "notes"
}
