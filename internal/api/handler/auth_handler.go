package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medconnect/portal-api/internal/api/metrics"
	"github.com/medconnect/portal-api/internal/api/middleware"
	"github.com/medconnect/portal-api/internal/core/domain"
	"github.com/medconnect/portal-api/internal/core/ports"
)

// AuthHandler handles the login, signup, and logout form submissions.
type AuthHandler struct {
	sessions ports.SessionService
	forms    *formValidator
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions, forms: NewValidator()}
}

// Login submits the login form and establishes a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login form fields"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  fieldErrorsResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if req.Role == "" {
		req.Role = string(domain.RolePatient)
	}

	if errs := h.forms.FieldErrors(&req); len(errs) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues("login").Inc()
		return c.JSON(http.StatusUnprocessableEntity, fieldErrorsResponse{Errors: errs})
	}

	result, err := h.sessions.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	setSessionCookie(c, result.Token)
	return c.JSON(http.StatusOK, toAuthResponse(result))
}

// Signup submits the signup form, records the identity, and establishes a
// session immediately.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup form fields"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  fieldErrorsResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if req.Role == "" {
		req.Role = string(domain.RolePatient)
	}

	if errs := h.forms.FieldErrors(&req); len(errs) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues("signup").Inc()
		return c.JSON(http.StatusUnprocessableEntity, fieldErrorsResponse{Errors: errs})
	}

	result, err := h.sessions.Register(c.Request().Context(), ports.RegisterInput{
		Identity: domain.User{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Username:  req.Username,
			Email:     req.Email,
			Address: domain.Address{
				Line1:   req.AddressLine1,
				City:    req.City,
				State:   req.State,
				Pincode: req.Pincode,
			},
			Role: domain.Role(req.Role),
		},
		Password:       req.Password,
		PictureDraftID: req.PictureDraftID,
	})
	if err != nil {
		return err
	}

	setSessionCookie(c, result.Token)
	return c.JSON(http.StatusCreated, toAuthResponse(result))
}

// Logout clears the session. Logging out an anonymous session is a no-op
// that still answers with the login redirect.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  logoutResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	sessionID := ""
	if sess.Authenticated() {
		sessionID = sess.ID
	}
	if err := h.sessions.Logout(c.Request().Context(), sessionID); err != nil {
		return err
	}

	clearSessionCookie(c)
	return c.JSON(http.StatusOK, logoutResponse{Redirect: "/login"})
}

func toAuthResponse(result *ports.AuthResult) authResponse {
	u := result.User
	return authResponse{
		Token:    result.Token,
		Redirect: result.RedirectTo,
		User: userResponse{
			FirstName:      u.FirstName,
			LastName:       u.LastName,
			ProfilePicture: u.ProfilePicture,
			Username:       u.Username,
			Email:          u.Email,
			Address: addressResponse{
				Line1:   u.Address.Line1,
				City:    u.Address.City,
				State:   u.Address.State,
				Pincode: u.Address.Pincode,
			},
			Role: string(u.Role),
		},
	}
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
