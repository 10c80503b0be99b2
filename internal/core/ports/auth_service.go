package ports

import (
	"context"

	"github.com/hirafic/marketplace-api/internal/core/domain"
)

// RegisterInput carries everything needed to create a user and its role profile.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Role        string
	PhoneNumber string
	Location    string

	// Artisan-only profile fields; ignored for clients.
	Specialization string
	Skills         string
	SalaryPerHour  float64
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
