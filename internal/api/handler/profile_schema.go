package handler

// updateProfileRequest carries the editable profile fields. Field rules match
// the server-side validation of the profile forms: username 2-20, location
// 2-100, skills at most 500 characters.
type updateProfileRequest struct {
	Username    string `json:"username"     validate:"required,min=2,max=20"`
	Email       string `json:"email"        validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Location    string `json:"location"     validate:"required,min=2,max=100"`

	// Artisan-only fields.
	Specialization string  `json:"specialization,omitempty"`
	Skills         string  `json:"skills,omitempty"          validate:"max=500"`
	SalaryPerHour  float64 `json:"salary_per_hour,omitempty" validate:"omitempty,gt=0"`
}

type profileResponse struct {
	UserID         string  `json:"user_id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	PhoneNumber    string  `json:"phone_number"`
	Location       string  `json:"location"`
	Specialization string  `json:"specialization,omitempty"`
	Skills         string  `json:"skills,omitempty"`
	SalaryPerHour  float64 `json:"salary_per_hour,omitempty"`
}
