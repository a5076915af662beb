package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medconnect/portal-api/internal/core/domain"
)

// ViewHandler serves the public view models: landing, login, and signup.
type ViewHandler struct{}

func NewViewHandler() *ViewHandler {
	return &ViewHandler{}
}

type landingResponse struct {
	App     string            `json:"app"`
	Tagline string            `json:"tagline"`
	Links   map[string]string `json:"links"`
}

type loginViewResponse struct {
	Roles       []string `json:"roles"`
	DefaultRole string   `json:"defaultRole"`
}

type signupViewResponse struct {
	Roles []string `json:"roles"`
	// Role is the pre-seeded selection, taken from the navigation hint that
	// led to the form (e.g. the doctor entry button on the landing page).
	Role string `json:"role"`
}

// Landing serves GET / — the public landing view.
//
// @Summary      Public landing view
// @Tags         views
// @Produce      json
// @Success      200  {object}  landingResponse
// @Router       / [get]
func (h *ViewHandler) Landing(c echo.Context) error {
	return c.JSON(http.StatusOK, landingResponse{
		App:     "MedConnect",
		Tagline: "Connecting patients and doctors for better healthcare",
		Links: map[string]string{
			"login":  "/login",
			"signup": "/signup",
		},
	})
}

// LoginView serves GET /login — the login form view model.
//
// @Summary      Login form view
// @Tags         views
// @Produce      json
// @Success      200  {object}  loginViewResponse
// @Router       /login [get]
func (h *ViewHandler) LoginView(c echo.Context) error {
	return c.JSON(http.StatusOK, loginViewResponse{
		Roles:       []string{string(domain.RolePatient), string(domain.RoleDoctor)},
		DefaultRole: string(domain.RolePatient),
	})
}

// SignupView serves GET /signup — the signup form view model. An optional
// role hint pre-seeds the patient/doctor toggle; anything unrecognized
// falls back to patient.
//
// @Summary      Signup form view
// @Tags         views
// @Produce      json
// @Param        role  query     string  false  "Role hint (patient or doctor)"
// @Success      200   {object}  signupViewResponse
// @Router       /signup [get]
func (h *ViewHandler) SignupView(c echo.Context) error {
	role := domain.Role(c.QueryParam("role"))
	if !role.Valid() {
		role = domain.RolePatient
	}
	return c.JSON(http.StatusOK, signupViewResponse{
		Roles: []string{string(domain.RolePatient), string(domain.RoleDoctor)},
		Role:  string(role),
	})
}
