package dto

import (
	"time"

	"crudboard_backend/internal/models"
)

// AdminCreateUserRequest is the admin-only user creation payload.
// Unlike public signup it may assign any role.
type AdminCreateUserRequest struct {
	Name      string          `json:"name" binding:"required"`
	FirstName string          `json:"firstName" binding:"required"`
	Email     string          `json:"email" binding:"required,email"`
	Country   string          `json:"country" binding:"required"`
	Password  string          `json:"password" binding:"required,min=6"`
	Role      models.UserRole `json:"role,omitempty" binding:"omitempty,oneof=user admin"`
}

// UserDTO is the user shape returned by the API; it never carries the
// password hash.
type UserDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	FirstName string          `json:"firstName"`
	Email     string          `json:"email"`
	Country   string          `json:"country"`
	Role      models.UserRole `json:"role"`
	Verified  bool            `json:"verified"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewUserDTO maps a model onto the API shape.
func NewUserDTO(user *models.User) *UserDTO {
	return &UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		FirstName: user.FirstName,
		Email:     user.Email,
		Country:   user.Country,
		Role:      user.Role,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	}
}
