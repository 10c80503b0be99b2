package domain

// Client is the service-requester profile attached to a User with RoleClient.
// A client has many bookings as requester.
type Client struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Location    string `json:"location"`
}

// Artisan is the service-provider profile attached to a User with RoleArtisan.
// An artisan has many bookings as target.
type Artisan struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phone_number"`
	Location       string  `json:"location"`
	Specialization string  `json:"specialization"`
	Skills         string  `json:"skills"`
	SalaryPerHour  float64 `json:"salary_per_hour"`
}
