package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medconnect/portal-api/internal/core/domain"
)

// DashboardHandler renders the role-specific dashboard view models. These
// are passive renderers: the navigation guard has already decided the
// request may see the view.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

type profileCard struct {
	DisplayName    string `json:"displayName"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Address        string `json:"address"`
}

type appointmentItem struct {
	With    string `json:"with"`
	Purpose string `json:"purpose"`
	When    string `json:"when"`
}

type patientDashboardResponse struct {
	Title        string            `json:"title"`
	Profile      profileCard       `json:"profile"`
	Appointments []appointmentItem `json:"appointments"`
	Records      []string          `json:"records"`
}

type doctorDashboardResponse struct {
	Title        string            `json:"title"`
	Profile      profileCard       `json:"profile"`
	Appointments []appointmentItem `json:"appointments"`
	PatientCount int               `json:"patientCount"`
}

// loadingResponse is the neutral placeholder rendered when a view expecting
// an identity finds none; the guard normally redirects long before this.
type loadingResponse struct {
	Status string `json:"status"`
}

// Patient serves GET /patient-dashboard.
//
// @Summary      Patient dashboard view
// @Tags         dashboards
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  patientDashboardResponse
// @Failure      302  "redirect decided by the navigation guard"
// @Router       /patient-dashboard [get]
func (h *DashboardHandler) Patient(c echo.Context) error {
	user, ok := currentIdentity(c)
	if !ok {
		return c.JSON(http.StatusOK, loadingResponse{Status: "loading"})
	}

	return c.JSON(http.StatusOK, patientDashboardResponse{
		Title:   "Patient Dashboard",
		Profile: toProfileCard(user),
		Appointments: []appointmentItem{
			{With: "Dr. Michael Chen", Purpose: "Annual checkup", When: "next Tuesday, 10:00"},
			{With: "Dr. Sarah Patel", Purpose: "Follow-up consultation", When: "in two weeks"},
		},
		Records: []string{"Blood work — last month", "X-ray — last year"},
	})
}

// Doctor serves GET /doctor-dashboard.
//
// @Summary      Doctor dashboard view
// @Tags         dashboards
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  doctorDashboardResponse
// @Failure      302  "redirect decided by the navigation guard"
// @Router       /doctor-dashboard [get]
func (h *DashboardHandler) Doctor(c echo.Context) error {
	user, ok := currentIdentity(c)
	if !ok {
		return c.JSON(http.StatusOK, loadingResponse{Status: "loading"})
	}

	return c.JSON(http.StatusOK, doctorDashboardResponse{
		Title:   "Doctor Dashboard",
		Profile: toProfileCard(user),
		Appointments: []appointmentItem{
			{With: "John Smith", Purpose: "Annual checkup", When: "today, 09:30"},
			{With: "Emily Johnson", Purpose: "Prescription renewal", When: "today, 11:00"},
			{With: "Robert Lee", Purpose: "Test results review", When: "today, 14:15"},
		},
		PatientCount: 42,
	})
}

func toProfileCard(user *domain.User) profileCard {
	return profileCard{
		DisplayName:    user.DisplayName(),
		Email:          user.Email,
		Username:       user.Username,
		ProfilePicture: user.ProfilePicture,
		Address:        user.Address.Line1 + ", " + user.Address.City + ", " + user.Address.State + ", " + user.Address.Pincode,
	}
}
