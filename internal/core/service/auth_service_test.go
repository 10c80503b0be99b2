package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirafic/marketplace-api/internal/core/domain"
	"github.com/hirafic/marketplace-api/internal/core/ports"
)

type stubUserRepo struct {
	users  []*domain.User
	nextID int
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = "user_" + strconv.Itoa(r.nextID)
	r.users = append(r.users, &clone)
	copy := clone
	return &copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			clone := *user
			r.users[i] = &clone
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newAuthFixture() (*stubUserRepo, *stubClientRepo, *stubArtisanRepo, *AuthService) {
	users := &stubUserRepo{}
	clients := newStubClientRepo()
	artisans := newStubArtisanRepo()
	svc := NewAuthService(users, clients, artisans, "secret", time.Hour)
	return users, clients, artisans, svc
}

func clientInput(username, email string) ports.RegisterInput {
	return ports.RegisterInput{
		Username:    username,
		Email:       email,
		Password:    "pass12345",
		Role:        domain.RoleClient,
		PhoneNumber: "+212600000001",
		Location:    "Casablanca",
	}
}

func TestAuthService_Register_Client(t *testing.T) {
	_, clients, _, svc := newAuthFixture()

	user, err := svc.Register(context.Background(), clientInput("alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass12345" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("unexpected role: %s", user.Role)
	}

	profile, err := clients.FindByUserID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("expected client profile created: %v", err)
	}
	if profile.Email != "alice@example.com" {
		t.Errorf("profile email: %s", profile.Email)
	}
}

func TestAuthService_Register_Artisan(t *testing.T) {
	_, _, artisans, svc := newAuthFixture()

	input := clientInput("youssef", "youssef@example.com")
	input.Role = domain.RoleArtisan
	input.Specialization = "plumbing"
	input.Skills = "pipes, fittings"
	input.SalaryPerHour = 25.5

	user, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	profile, err := artisans.FindByUserID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("expected artisan profile created: %v", err)
	}
	if profile.Specialization != "plumbing" || profile.SalaryPerHour != 25.5 {
		t.Errorf("unexpected artisan profile: %+v", profile)
	}
}

func TestAuthService_Register_EmailLowercased(t *testing.T) {
	users, _, _, svc := newAuthFixture()

	if _, err := svc.Register(context.Background(), clientInput("bob", "Bob@Example.COM")); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := users.FindByEmail(context.Background(), "bob@example.com"); err != nil {
		t.Fatalf("expected lowercase email stored: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	_, _, _, svc := newAuthFixture()

	input := clientInput("", "x@example.com")
	if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for missing username, got %v", err)
	}

	input = clientInput("bob", "bob@example.com")
	input.Role = "admin"
	if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	_, _, _, svc := newAuthFixture()

	if _, err := svc.Register(context.Background(), clientInput("bob", "bob@example.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), clientInput("bob", "other@example.com")); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	_, _, _, svc := newAuthFixture()

	registered, err := svc.Register(context.Background(), clientInput("carol", "carol@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "pass12345")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleClient {
		t.Fatalf("expected role %s, got %v", domain.RoleClient, claims["role"])
	}
	if claims["user_id"] != registered.ID {
		t.Fatalf("expected user_id %s, got %v", registered.ID, claims["user_id"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	_, _, _, svc := newAuthFixture()

	_, _ = svc.Register(context.Background(), clientInput("dave", "dave@example.com"))
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	_, _, _, svc := newAuthFixture()

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
