package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hirafic/marketplace-api/internal/api/metrics"
	"github.com/hirafic/marketplace-api/internal/core/domain"
	"github.com/hirafic/marketplace-api/internal/core/ports"
)

// NotifyDedup abstracts the notification dedup store (Redis). Keys identify a
// submission, not a stored booking, so a client retry maps to the same key and
// the second email is suppressed.
type NotifyDedup interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type bookingService struct {
	bookings ports.BookingRepository
	clients  ports.ClientRepository
	artisans ports.ArtisanRepository
	mailer   ports.Mailer
	dedup    NotifyDedup
	log      zerolog.Logger
}

// NewBookingService returns a BookingService implementation.
func NewBookingService(
	bookings ports.BookingRepository,
	clients ports.ClientRepository,
	artisans ports.ArtisanRepository,
	mailer ports.Mailer,
	dedup NotifyDedup,
	log zerolog.Logger,
) ports.BookingService {
	return &bookingService{
		bookings: bookings,
		clients:  clients,
		artisans: artisans,
		mailer:   mailer,
		dedup:    dedup,
		log:      log,
	}
}

// CreateBooking resolves both parties, validates the completion date, persists
// the booking as Pending and notifies the artisan by email. The email is a
// synchronous call; a send failure is logged and counted but never fails the
// request, since the booking is already durable.
func (s *bookingService) CreateBooking(ctx context.Context, input ports.CreateBookingInput) (*ports.BookingResult, error) {
	now := time.Now().UTC()
	if input.CompletionDate.Before(now) {
		return nil, domain.ErrPastCompletionDate
	}

	client, err := s.clients.FindByEmail(ctx, strings.ToLower(input.ClientEmail))
	if err != nil {
		return nil, err
	}
	artisan, err := s.artisans.FindByEmail(ctx, strings.ToLower(input.ArtisanEmail))
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ClientID:       client.ID,
		ArtisanID:      artisan.ID,
		Title:          input.Title,
		Status:         domain.StatusPending,
		RequestDate:    now,
		CompletionDate: input.CompletionDate.UTC(),
		Details:        input.Details,
		CreatedAt:      now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.log.Error().Err(err).Str("client_id", client.ID).Msg("failed to create booking")
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	s.log.Info().
		Str("booking_id", booking.ID).
		Str("client_id", client.ID).
		Str("artisan_id", artisan.ID).
		Msg("booking created")

	s.notifyArtisan(ctx, booking, client, artisan)

	return &ports.BookingResult{
		ID:             booking.ID,
		Status:         string(booking.Status),
		RequestDate:    booking.RequestDate,
		CompletionDate: booking.CompletionDate,
	}, nil
}

// notificationKey derives the dedup key from the submission fields rather than
// the generated booking id, so a client retrying the same submission lands on
// the key marked by the first attempt.
func notificationKey(b *domain.Booking) string {
	h := sha256.Sum256([]byte(b.ClientID + "\x00" + b.ArtisanID + "\x00" + b.Title + "\x00" + b.CompletionDate.UTC().Format(time.RFC3339Nano)))
	return hex.EncodeToString(h[:])
}

// notifyArtisan sends the new-booking email to the artisan. Dedup and send
// failures are non-fatal.
func (s *bookingService) notifyArtisan(ctx context.Context, b *domain.Booking, client *domain.Client, artisan *domain.Artisan) {
	key := notificationKey(b)
	isDup, err := s.dedup.IsDuplicate(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("booking_id", b.ID).Msg("dedup check failed, sending anyway")
	} else if isDup {
		s.log.Debug().Str("booking_id", b.ID).Msg("duplicate notification skipped")
		return
	}

	subject := fmt.Sprintf("HIRAFIC: New Booking from %s", client.Name)
	body := notificationBody(b, client, artisan)

	if err := s.mailer.Send(ctx, artisan.Email, subject, body); err != nil {
		metrics.NotificationErrorsTotal.WithLabelValues("send_failed").Inc()
		s.log.Error().Err(err).Str("booking_id", b.ID).Str("to", artisan.Email).Msg("failed to send booking notification")
		return
	}

	metrics.NotificationsSentTotal.Inc()
	if err := s.dedup.Mark(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("booking_id", b.ID).Msg("failed to set dedup key")
	}
}

func notificationBody(b *domain.Booking, client *domain.Client, artisan *domain.Artisan) string {
	const layout = "2006-01-02 15:04:05"
	return fmt.Sprintf(`Hello %s,

You have received a new booking with title %s.
You can contact the client %s at %s,
or at this email address %s.

Booking Details:
%s

Requested Date:
    %s

Expected Completion Date:
    %s

Please view the booking details in your dashboard.

Best regards,
Your HIRAFIC Booking Team
`,
		artisan.Name,
		b.Title,
		client.Name,
		client.PhoneNumber,
		client.Email,
		b.Details,
		b.RequestDate.Format(layout),
		b.CompletionDate.Format(layout),
	)
}

// UpdateBooking applies an artisan-side status change, validated against the
// booking state machine.
func (s *bookingService) UpdateBooking(ctx context.Context, input ports.UpdateBookingInput) (*domain.Booking, error) {
	next, err := domain.ParseStatus(input.Action)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.FindByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, next)
	}

	if err := s.bookings.UpdateStatus(ctx, booking.ID, next); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(next)).Inc()
	s.log.Info().
		Str("booking_id", booking.ID).
		Str("from", string(booking.Status)).
		Str("to", string(next)).
		Msg("booking status updated")

	booking.Status = next
	return booking, nil
}

// ListBookings returns the caller's bookings, as client or artisan depending
// on role, sorted by request_date descending and paged.
func (s *bookingService) ListBookings(ctx context.Context, input ports.ListBookingsInput) (*ports.ListBookingsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = 10
	}

	filter := ports.ListBookingsFilter{Page: page, PerPage: perPage}
	if input.Role == domain.RoleArtisan {
		artisan, err := s.artisans.FindByUserID(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		filter.ArtisanID = artisan.ID
	} else {
		client, err := s.clients.FindByUserID(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		filter.ClientID = client.ID
	}

	bookings, total, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	if bookings == nil {
		bookings = []*domain.Booking{}
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return &ports.ListBookingsResult{
		Bookings:    bookings,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}
