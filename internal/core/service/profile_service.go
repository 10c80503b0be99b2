package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hirafic/marketplace-api/internal/core/domain"
	"github.com/hirafic/marketplace-api/internal/core/ports"
)

type profileService struct {
	users    ports.UserRepository
	clients  ports.ClientRepository
	artisans ports.ArtisanRepository
	log      zerolog.Logger
}

// NewProfileService returns a ProfileService implementation.
func NewProfileService(
	users ports.UserRepository,
	clients ports.ClientRepository,
	artisans ports.ArtisanRepository,
	log zerolog.Logger,
) ports.ProfileService {
	return &profileService{users: users, clients: clients, artisans: artisans, log: log}
}

// UpdateProfile applies the edited fields to the user account and its role
// profile. Username and email changes are checked for uniqueness against
// other accounts first.
func (s *profileService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*ports.ProfileResult, error) {
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(input.Email)
	if input.Username != user.Username {
		if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
			return nil, domain.ErrUserExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}
	if email != user.Email {
		if _, err := s.users.FindByEmail(ctx, email); err == nil {
			return nil, domain.ErrUserExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	user.Username = input.Username
	user.Email = email
	user.PhoneNumber = input.PhoneNumber
	user.Location = input.Location
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	result := &ports.ProfileResult{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
		PhoneNumber: user.PhoneNumber,
		Location:    user.Location,
	}

	if user.Role == domain.RoleArtisan {
		artisan, err := s.artisans.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		artisan.Name = user.Username
		artisan.Email = user.Email
		artisan.PhoneNumber = user.PhoneNumber
		artisan.Location = user.Location
		artisan.Specialization = input.Specialization
		artisan.Skills = input.Skills
		artisan.SalaryPerHour = input.SalaryPerHour
		if err := s.artisans.Update(ctx, artisan); err != nil {
			return nil, err
		}
		result.Specialization = artisan.Specialization
		result.Skills = artisan.Skills
		result.SalaryPerHour = artisan.SalaryPerHour
	} else {
		client, err := s.clients.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		client.Name = user.Username
		client.Email = user.Email
		client.PhoneNumber = user.PhoneNumber
		client.Location = user.Location
		if err := s.clients.Update(ctx, client); err != nil {
			return nil, err
		}
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("profile updated")
	return result, nil
}
