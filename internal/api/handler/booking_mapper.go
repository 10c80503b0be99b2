package handler

import (
	"github.com/hirafic/marketplace-api/internal/core/domain"
	"github.com/hirafic/marketplace-api/internal/core/ports"
)

// --- Service result → HTTP response ---

func toListResponse(r *ports.ListBookingsResult) listBookingsResponse {
	items := make([]bookingResponse, len(r.Bookings))
	for i, b := range r.Bookings {
		items[i] = toBookingResponse(b)
	}
	return listBookingsResponse{
		Bookings:    items,
		TotalPages:  r.TotalPages,
		CurrentPage: r.CurrentPage,
	}
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:             b.ID,
		ClientID:       b.ClientID,
		ArtisanID:      b.ArtisanID,
		Title:          b.Title,
		Status:         string(b.Status),
		RequestDate:    b.RequestDate.UTC(),
		CompletionDate: b.CompletionDate.UTC(),
		Details:        b.Details,
		CreatedAt:      b.CreatedAt.UTC(),
	}
}
