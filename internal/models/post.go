package models

type Post struct {
	BaseModel
	Title  string `gorm:"not null" json:"title"`
	Body   string `gorm:"not null" json:"body"`
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`

	// Relations
	Comments []Comment `gorm:"foreignKey:PostID" json:"-"`
}
