package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hirafic/marketplace-api/internal/core/domain"
	"github.com/hirafic/marketplace-api/internal/core/ports"
)

// ProfileHandler handles profile updates for both roles.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Update handles PUT /profile. Artisan-only fields are required when the
// caller holds the Artisan role and ignored otherwise.
//
// @Summary      Update the current user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if role == domain.RoleArtisan && req.Specialization == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "specialization is required")
	}

	result, err := h.service.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		UserID:         userID,
		Role:           role,
		Username:       req.Username,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Location:       req.Location,
		Specialization: req.Specialization,
		Skills:         req.Skills,
		SalaryPerHour:  req.SalaryPerHour,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		UserID:         result.UserID,
		Username:       result.Username,
		Email:          result.Email,
		Role:           result.Role,
		PhoneNumber:    result.PhoneNumber,
		Location:       result.Location,
		Specialization: result.Specialization,
		Skills:         result.Skills,
		SalaryPerHour:  result.SalaryPerHour,
	})
}
