package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirafic/marketplace-api/internal/core/domain"
	"github.com/hirafic/marketplace-api/internal/core/ports"
)

// AuthService implements registration and login. Registration also creates
// the role profile (Client or Artisan) attached one-to-one to the user.
type AuthService struct {
	users     ports.UserRepository
	clients   ports.ClientRepository
	artisans  ports.ArtisanRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(
	users ports.UserRepository,
	clients ports.ClientRepository,
	artisans ports.ArtisanRepository,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		clients:   clients,
		artisans:  artisans,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		Role:         input.Role,
		PhoneNumber:  input.PhoneNumber,
		Location:     input.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.createProfile(ctx, created, input); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AuthService) createProfile(ctx context.Context, user *domain.User, input ports.RegisterInput) error {
	if user.Role == domain.RoleArtisan {
		return s.artisans.Create(ctx, &domain.Artisan{
			UserID:         user.ID,
			Name:           user.Username,
			Email:          user.Email,
			PhoneNumber:    user.PhoneNumber,
			Location:       user.Location,
			Specialization: input.Specialization,
			Skills:         input.Skills,
			SalaryPerHour:  input.SalaryPerHour,
		})
	}
	return s.clients.Create(ctx, &domain.Client{
		UserID:      user.ID,
		Name:        user.Username,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Location:    user.Location,
	})
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
