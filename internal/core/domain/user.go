package domain

import (
	"errors"
	"time"
)

const (
	RoleClient  = "Client"
	RoleArtisan = "Artisan"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username or email already taken")

// User models an authenticated actor in the system. Role determines which
// profile entity (Client or Artisan) is attached one-to-one.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	PhoneNumber  string    `json:"phone_number"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the two marketplace roles.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleArtisan
}
