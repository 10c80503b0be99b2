package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hirafic/marketplace-api/internal/core/domain"
	"github.com/hirafic/marketplace-api/internal/core/ports"
)

type stubAuthService struct {
	registerInput ports.RegisterInput
	registerErr   error
	loginEmail    string
	loginErr      error
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	s.registerInput = input
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &domain.User{ID: "user_1", Username: input.Username, Email: input.Email, Role: input.Role}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	s.loginEmail = email
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "signed.jwt.token", &domain.User{ID: "user_1", Email: email, Role: domain.RoleClient}, nil
}

func TestAuthHandlerRegister(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	body := `{"username":"amina","email":"amina@example.com","password":"s3cretpass","role":"Client","phone_number":"+212600000001","location":"Casablanca"}`
	c, rec := newBookingContext(t, http.MethodPost, "/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.registerInput.Role != "Client" {
		t.Fatalf("role not forwarded: %q", svc.registerInput.Role)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password leaked in response: %s", rec.Body.String())
	}
}

func TestAuthHandlerRegister_InvalidRole(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	body := `{"username":"amina","email":"amina@example.com","password":"s3cretpass","role":"Admin","phone_number":"+212600000001","location":"Casablanca"}`
	c, _ := newBookingContext(t, http.MethodPost, "/auth/register", body)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandlerRegister_ShortPassword(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	body := `{"username":"amina","email":"amina@example.com","password":"short","role":"Client","phone_number":"+212600000001","location":"Casablanca"}`
	c, _ := newBookingContext(t, http.MethodPost, "/auth/register", body)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandlerRegister_DuplicatePassesThrough(t *testing.T) {
	svc := &stubAuthService{registerErr: domain.ErrUserExists}
	h := NewAuthHandler(svc)

	body := `{"username":"amina","email":"amina@example.com","password":"s3cretpass","role":"Client","phone_number":"+212600000001","location":"Casablanca"}`
	c, _ := newBookingContext(t, http.MethodPost, "/auth/register", body)

	if err := h.Register(c); err != domain.ErrUserExists {
		t.Fatalf("expected domain error passthrough, got %v", err)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	body := `{"email":"amina@example.com","password":"s3cretpass"}`
	c, rec := newBookingContext(t, http.MethodPost, "/auth/login", body)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "signed.jwt.token") {
		t.Fatalf("token missing from response: %s", rec.Body.String())
	}
	if svc.loginEmail != "amina@example.com" {
		t.Fatalf("email not forwarded: %q", svc.loginEmail)
	}
}

func TestAuthHandlerLogin_MissingPassword(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	body := `{"email":"amina@example.com"}`
	c, _ := newBookingContext(t, http.MethodPost, "/auth/login", body)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandlerLogin_BadCredentialsPassThrough(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	body := `{"email":"amina@example.com","password":"wrongpass"}`
	c, _ := newBookingContext(t, http.MethodPost, "/auth/login", body)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected domain error passthrough, got %v", err)
	}
}
