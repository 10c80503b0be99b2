package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createBookingRequest struct {
	ClientEmail    string `json:"client_email"    validate:"required,email"`
	ArtisanEmail   string `json:"artisan_email"   validate:"required,email"`
	Title          string `json:"title"           validate:"required"`
	Details        string `json:"details"`
	CompletionDate string `json:"completion_date" validate:"required"`
}

type updateBookingRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	Action    string `json:"action"     validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type createBookingResponse struct {
	Message        string    `json:"message"`
	BookingID      string    `json:"booking_id"`
	Status         string    `json:"status"`
	RequestDate    time.Time `json:"request_date"`
	CompletionDate time.Time `json:"completion_date"`
}

type updateBookingResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

type bookingResponse struct {
	ID             string    `json:"id"`
	ClientID       string    `json:"client_id"`
	ArtisanID      string    `json:"artisan_id"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	RequestDate    time.Time `json:"request_date"`
	CompletionDate time.Time `json:"completion_date"`
	Details        string    `json:"details"`
	CreatedAt      time.Time `json:"created_at"`
}

type listBookingsResponse struct {
	Bookings    []bookingResponse `json:"bookings"`
	TotalPages  int               `json:"total_pages"`
	CurrentPage int               `json:"current_page"`
}
