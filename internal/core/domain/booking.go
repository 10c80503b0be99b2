package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusAccepted  BookingStatus = "Accepted"
	StatusDeclined  BookingStatus = "Declined"
	StatusCompleted BookingStatus = "Completed"
)

// validTransitions defines the allowed state machine transitions. Only the
// artisan side mutates status, via the booking update endpoint.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusAccepted, StatusDeclined},
	StatusAccepted: {StatusCompleted},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrUnknownStatus = errors.New("unknown booking status")
var ErrBookingNotFound = errors.New("booking not found")
var ErrClientNotFound = errors.New("client or artisan not found")
var ErrPastCompletionDate = errors.New("completion date cannot be in the past")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseStatus converts a raw action string into a BookingStatus.
func ParseStatus(raw string) (BookingStatus, error) {
	switch BookingStatus(raw) {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCompleted:
		return BookingStatus(raw), nil
	}
	return "", ErrUnknownStatus
}

// Booking is a request from a Client to an Artisan for work.
// request_date and created_at are set at creation and never change.
type Booking struct {
	ID             string        `json:"id"`
	ClientID       string        `json:"client_id"`
	ArtisanID      string        `json:"artisan_id"`
	Title          string        `json:"title"`
	Status         BookingStatus `json:"status"`
	RequestDate    time.Time     `json:"request_date"`
	CompletionDate time.Time     `json:"completion_date"`
	Details        string        `json:"details"`
	CreatedAt      time.Time     `json:"created_at"`
}
