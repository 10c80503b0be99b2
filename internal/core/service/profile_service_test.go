package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hirafic/marketplace-api/internal/core/domain"
	"github.com/hirafic/marketplace-api/internal/core/ports"
)

func newProfileFixture(t *testing.T) (*stubUserRepo, *stubClientRepo, *stubArtisanRepo, ports.ProfileService, *domain.User, *domain.User) {
	t.Helper()
	users := &stubUserRepo{}
	clients := newStubClientRepo()
	artisans := newStubArtisanRepo()
	auth := NewAuthService(users, clients, artisans, "secret", time.Hour)

	client, err := auth.Register(context.Background(), clientInput("amina", "amina@example.com"))
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	artisanInput := clientInput("youssef", "youssef@example.com")
	artisanInput.Role = domain.RoleArtisan
	artisanInput.Specialization = "plumbing"
	artisan, err := auth.Register(context.Background(), artisanInput)
	if err != nil {
		t.Fatalf("seed artisan: %v", err)
	}

	svc := NewProfileService(users, clients, artisans, zerolog.Nop())
	return users, clients, artisans, svc, client, artisan
}

func TestProfileService_Update_Client(t *testing.T) {
	_, clients, _, svc, client, _ := newProfileFixture(t)

	result, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID:      client.ID,
		Role:        domain.RoleClient,
		Username:    "amina_b",
		Email:       "amina.b@example.com",
		PhoneNumber: "+212600000009",
		Location:    "Rabat",
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if result.Username != "amina_b" || result.Email != "amina.b@example.com" {
		t.Errorf("unexpected result: %+v", result)
	}

	profile, err := clients.FindByUserID(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("client profile lookup: %v", err)
	}
	if profile.Email != "amina.b@example.com" || profile.Location != "Rabat" {
		t.Errorf("profile not synced: %+v", profile)
	}
}

func TestProfileService_Update_ArtisanFields(t *testing.T) {
	_, _, artisans, svc, _, artisan := newProfileFixture(t)

	result, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID:         artisan.ID,
		Role:           domain.RoleArtisan,
		Username:       "youssef",
		Email:          "youssef@example.com",
		PhoneNumber:    "+212600000002",
		Location:       "Fes",
		Specialization: "electrical",
		Skills:         "wiring, panels",
		SalaryPerHour:  30,
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if result.Specialization != "electrical" || result.SalaryPerHour != 30 {
		t.Errorf("unexpected result: %+v", result)
	}

	profile, err := artisans.FindByUserID(context.Background(), artisan.ID)
	if err != nil {
		t.Fatalf("artisan profile lookup: %v", err)
	}
	if profile.Specialization != "electrical" || profile.Skills != "wiring, panels" {
		t.Errorf("profile not synced: %+v", profile)
	}
}

func TestProfileService_Update_UsernameTaken(t *testing.T) {
	_, _, _, svc, client, _ := newProfileFixture(t)

	_, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID:      client.ID,
		Role:        domain.RoleClient,
		Username:    "youssef", // owned by the artisan
		Email:       "amina@example.com",
		PhoneNumber: "+212600000001",
		Location:    "Casablanca",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestProfileService_Update_EmailTaken(t *testing.T) {
	_, _, _, svc, client, _ := newProfileFixture(t)

	_, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID:      client.ID,
		Role:        domain.RoleClient,
		Username:    "amina",
		Email:       "Youssef@example.com", // owned by the artisan, case-insensitive
		PhoneNumber: "+212600000001",
		Location:    "Casablanca",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestProfileService_Update_KeepingOwnIdentifiers(t *testing.T) {
	_, _, _, svc, client, _ := newProfileFixture(t)

	// Re-submitting your own username/email must not trip the uniqueness check.
	if _, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID:      client.ID,
		Role:        domain.RoleClient,
		Username:    "amina",
		Email:       "amina@example.com",
		PhoneNumber: "+212600000001",
		Location:    "Casablanca",
	}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

// wrappingUserRepo wraps lookup errors the way a real repository does, so the
// uniqueness checks must match sentinels through the wrap.
type wrappingUserRepo struct {
	*stubUserRepo
}

func (r *wrappingUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := r.stubUserRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (r *wrappingUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := r.stubUserRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func TestProfileService_Update_WrappedNotFoundStillFree(t *testing.T) {
	users := &stubUserRepo{}
	clients := newStubClientRepo()
	artisans := newStubArtisanRepo()
	auth := NewAuthService(users, clients, artisans, "secret", time.Hour)

	client, err := auth.Register(context.Background(), clientInput("amina", "amina@example.com"))
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	svc := NewProfileService(&wrappingUserRepo{users}, clients, artisans, zerolog.Nop())
	if _, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID:      client.ID,
		Role:        domain.RoleClient,
		Username:    "amina_b",
		Email:       "amina.b@example.com",
		PhoneNumber: "+212600000001",
		Location:    "Casablanca",
	}); err != nil {
		t.Fatalf("expected free identifiers to pass through wrapped not-found, got %v", err)
	}
}

func TestProfileService_Update_UnknownUser(t *testing.T) {
	_, _, _, svc, _, _ := newProfileFixture(t)

	_, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID:   "user_missing",
		Role:     domain.RoleClient,
		Username: "x",
		Email:    "x@example.com",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
