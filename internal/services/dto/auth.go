package dto

import (
	"crudboard_backend/internal/models"
)

// SignupRequest is the public registration payload. The role field is
// accepted but public signup may only request "user"; "admin" is
// rejected by the service with 403.
type SignupRequest struct {
	Name      string          `json:"name" binding:"required"`
	FirstName string          `json:"firstName" binding:"required"`
	Email     string          `json:"email" binding:"required,email"`
	Country   string          `json:"country" binding:"required"`
	Password  string          `json:"password" binding:"required,min=6"`
	Role      models.UserRole `json:"role,omitempty" binding:"omitempty,oneof=user admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the session token issued on login.
type TokenResponse struct {
	Token string `json:"token"`
}

// VerifyEmailResponse reports the outcome of a verification-link
// redemption. Redeeming twice is not an error.
type VerifyEmailResponse struct {
	Message         string `json:"message"`
	AlreadyVerified bool   `json:"-"`
}
