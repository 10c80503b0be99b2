package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hirafic/marketplace-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for the booking workflow.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /book_artisan — a client books an artisan.
//
// @Summary      Book an artisan
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  createBookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /book_artisan [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// ISO-8601, fractional seconds and trailing 'Z' both optional.
	completionDate, err := time.Parse(time.RFC3339Nano, req.CompletionDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "completion_date must be an ISO-8601 timestamp")
	}

	result, err := h.service.CreateBooking(c.Request().Context(), ports.CreateBookingInput{
		ClientEmail:    req.ClientEmail,
		ArtisanEmail:   req.ArtisanEmail,
		Title:          req.Title,
		Details:        req.Details,
		CompletionDate: completionDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createBookingResponse{
		Message:        "booking created and email sent successfully",
		BookingID:      result.ID,
		Status:         result.Status,
		RequestDate:    result.RequestDate.UTC(),
		CompletionDate: result.CompletionDate.UTC(),
	})
}

// Update handles PUT /book_artisan — an artisan accepts, declines or
// completes a booking.
//
// @Summary      Update a booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateBookingRequest  true  "Booking id and action"
// @Success      200   {object}  updateBookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /book_artisan [put]
func (h *BookingHandler) Update(c echo.Context) error {
	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.UpdateBooking(c.Request().Context(), ports.UpdateBookingInput{
		BookingID: req.BookingID,
		Action:    req.Action,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateBookingResponse{
		Message:   "booking updated successfully",
		BookingID: booking.ID,
		Status:    string(booking.Status),
	})
}

// List handles GET /bookings — the caller's bookings, newest request first.
//
// @Summary      List bookings for the current user
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int  false  "Page number (default 1)"
// @Param        per_page  query     int  false  "Page size (default 10)"
// @Success      200       {object}  listBookingsResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	page, perPage, err := paginationParams(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListBookings(c.Request().Context(), ports.ListBookingsInput{
		UserID:  userID,
		Role:    role,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// paginationParams parses page/per_page with defaults 1 and 10. Values that
// are not positive integers are a client error.
func paginationParams(c echo.Context) (page, perPage int, err error) {
	page, err = queryInt(c, "page", 1)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "page must be a positive integer")
	}
	perPage, err = queryInt(c, "per_page", 10)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "per_page must be a positive integer")
	}
	return page, perPage, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return n, nil
}
