package ports

import "context"

// UpdateProfileInput carries the editable profile fields. The caller identity
// comes from the auth claims, never from the payload.
type UpdateProfileInput struct {
	UserID      string
	Role        string
	Username    string
	Email       string
	PhoneNumber string
	Location    string

	// Artisan-only fields; ignored for clients.
	Specialization string
	Skills         string
	SalaryPerHour  float64
}

// ProfileResult is the role-agnostic view returned after an update.
type ProfileResult struct {
	UserID         string
	Username       string
	Email          string
	Role           string
	PhoneNumber    string
	Location       string
	Specialization string
	Skills         string
	SalaryPerHour  float64
}

// ProfileService updates a user's account and role profile together.
type ProfileService interface {
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*ProfileResult, error)
}
