package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses that are not field-validation failures.
type errorResponse struct {
	Error string `json:"error"`
}

// fieldErrorsResponse carries the full set of per-field validation messages
// for a rejected form submission. Errors are collected, never truncated to
// the first failure.
type fieldErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	// Role mirrors the exclusive patient/doctor toggle; the form always has
	// a selection, so an absent value falls back to patient before
	// validation runs.
	Role string `json:"role" validate:"omitempty,oneof=patient doctor"`
}

type signupRequest struct {
	FirstName       string `json:"firstName"       validate:"notblank"`
	LastName        string `json:"lastName"        validate:"notblank"`
	Username        string `json:"username"        validate:"notblank"`
	Email           string `json:"email"           validate:"required,emailish"`
	Password        string `json:"password"        validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	AddressLine1    string `json:"addressLine1"    validate:"notblank"`
	City            string `json:"city"            validate:"notblank"`
	State           string `json:"state"           validate:"notblank"`
	Pincode         string `json:"pincode"         validate:"notblank"`
	Role            string `json:"role"            validate:"omitempty,oneof=patient doctor"`
	// PictureDraftID references a previously uploaded profile picture; the
	// service resolves it to the converted data URI at registration time.
	PictureDraftID string `json:"pictureDraftId"`
}

// --- Response types ---

type addressResponse struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type userResponse struct {
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	ProfilePicture string          `json:"profilePicture,omitempty"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	Address        addressResponse `json:"address"`
	Role           string          `json:"role"`
}

// authResponse is returned by successful login and signup submissions.
// Redirect is the navigation decision computed after the session mutation,
// in the same response turn.
type authResponse struct {
	Token    string       `json:"token"`
	User     userResponse `json:"user"`
	Redirect string       `json:"redirect"`
}

type logoutResponse struct {
	Redirect string `json:"redirect"`
}
