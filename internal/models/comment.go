package models

type Comment struct {
	BaseModel
	Body   string `gorm:"not null" json:"body"`
	PostID string `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
}
