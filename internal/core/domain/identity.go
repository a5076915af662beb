package domain

import "errors"

// Role determines which dashboard an identity is routed to. It is chosen
// explicitly at signup/login and fixed for the lifetime of the identity.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// DashboardPath returns the dashboard route owned by this role.
func (r Role) DashboardPath() string {
	if r == RoleDoctor {
		return "/doctor-dashboard"
	}
	return "/patient-dashboard"
}

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRole = errors.New("invalid role")
var ErrSubmissionInFlight = errors.New("submission already in progress")

// Address is the nested postal address on an identity.
type Address struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// User models a validated identity record. The password used during signup
// or login is never stored here; it exists only in the form payload.
type User struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Address        Address `json:"address"`
	Role           Role    `json:"role"`
}

// DisplayName renders the full name the way the dashboards show it.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
