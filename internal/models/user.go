package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	FirstName    string   `gorm:"not null" json:"first_name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Country      string   `gorm:"not null" json:"country"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Verified     bool     `gorm:"default:false" json:"verified"`

	// Relations
	Posts    []Post    `gorm:"foreignKey:UserID" json:"-"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"-"`
}
