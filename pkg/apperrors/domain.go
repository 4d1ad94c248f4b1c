package apperrors

import (
	"net/http"
)

// Predefined domain errors. Services return these; handlers translate
// them into HTTP responses without inventing new messages.

// ErrInvalidCredentials covers both unknown email and wrong password.
// One message for both so responses cannot be used for account
// enumeration.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"Email already in use",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"users",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

// ErrInvalidUserRole rejects public registration of privileged roles.
var ErrInvalidUserRole = New(
	CodeForbidden,
	"users",
	"Unauthorized role",
	http.StatusForbidden,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

var ErrPostNotFound = New(
	CodeNotFound,
	"posts",
	"Post not found",
	http.StatusNotFound,
)

var ErrCommentNotFound = New(
	CodeNotFound,
	"comments",
	"Comment not found",
	http.StatusNotFound,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrNotResourceOwner rejects mutations of content owned by another
// user, unless the caller is an admin.
var ErrNotResourceOwner = New(
	CodeForbidden,
	"posts",
	"You do not have permission to perform this action",
	http.StatusForbidden,
)
