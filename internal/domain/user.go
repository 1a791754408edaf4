package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin-panel account. The public site has no accounts: comments,
// wall messages and applications are submitted without authentication.
type User struct {
	ID           uuid.UUID `json:"id" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Role         string    `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenPair struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

const (
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

func (u *User) HasRole(requiredRole string) bool {
	switch requiredRole {
	case RoleAdmin:
		return u.Role == RoleAdmin
	case RoleModerator:
		return u.Role == RoleModerator || u.Role == RoleAdmin
	default:
		return false
	}
}
