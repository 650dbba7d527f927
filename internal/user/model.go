package user

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.NotFound("user not found")
	ErrEmailAlreadyUsed   = apperror.Conflict("email already used")
	ErrInvalidCredentials = apperror.Unauthorized("invalid email or password")
	ErrEmailRequired      = apperror.Invalid("email is required")
	ErrNameRequired       = apperror.Invalid("name is required")
	ErrPasswordTooShort   = apperror.Invalid("password is too short")
	ErrPermissionDenied   = apperror.Forbidden("users may only change their own account")
)

// User represents a user in the system.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	Name         string
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// Filter defines filter options for listing users.
type Filter struct {
	Email  string
	Name   string
	Offset uint64
	Limit  uint64
}
