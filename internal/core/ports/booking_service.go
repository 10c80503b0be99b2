package ports

import (
	"context"
	"time"

	"github.com/hirafic/marketplace-api/internal/core/domain"
)

// CreateBookingInput carries all data needed to create a booking. Emails are
// resolved against the client/artisan profiles before anything is persisted.
type CreateBookingInput struct {
	ClientEmail    string
	ArtisanEmail   string
	Title          string
	Details        string
	CompletionDate time.Time
}

// BookingResult is returned by the service after creating a booking.
type BookingResult struct {
	ID             string
	Status         string
	RequestDate    time.Time
	CompletionDate time.Time
}

// UpdateBookingInput carries the artisan-side status change.
type UpdateBookingInput struct {
	BookingID string
	Action    string
}

// ListBookingsInput carries the caller identity and pagination parameters.
type ListBookingsInput struct {
	UserID  string
	Role    string
	Page    int
	PerPage int
}

// ListBookingsResult is returned by ListBookings.
type ListBookingsResult struct {
	Bookings    []*domain.Booking
	TotalPages  int
	CurrentPage int
}

// BookingService defines the booking workflow operations.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingResult, error)
	UpdateBooking(ctx context.Context, input UpdateBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context, input ListBookingsInput) (*ListBookingsResult, error)
}
