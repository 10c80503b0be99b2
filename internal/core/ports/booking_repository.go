package ports

import (
	"context"

	"github.com/hirafic/marketplace-api/internal/core/domain"
)

// ListBookingsFilter carries the query parameters for listing bookings.
// Exactly one of ClientID/ArtisanID is set by the service layer depending on
// the caller's role.
type ListBookingsFilter struct {
	ClientID  string
	ArtisanID string
	Page      int // 1-based
	PerPage   int
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	// List returns a page of bookings sorted by request_date descending and
	// the total count matching the filter.
	List(ctx context.Context, filter ListBookingsFilter) ([]*domain.Booking, int64, error)
}
