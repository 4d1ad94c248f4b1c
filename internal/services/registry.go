package services

import (
	"crudboard_backend/internal/email"
)

// ServiceContainer groups every service the handlers depend on.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	PostService    PostService
	CommentService CommentService
	EmailService   email.Provider
}
