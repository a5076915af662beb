package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/medconnect/portal-api/internal/api/middleware"
	"github.com/medconnect/portal-api/internal/core/domain"
)

// currentIdentity extracts the authenticated identity behind a guarded view.
// The guard has already redirected anonymous and mismatched sessions, so a
// missing identity here is a transient condition, not an error: callers
// render a neutral loading placeholder instead of failing.
//
// Reaching this without the session middleware at all is a wiring defect
// and panics inside SessionFromContext.
func currentIdentity(c echo.Context) (*domain.User, bool) {
	sess := middleware.SessionFromContext(c)
	if !sess.Authenticated() {
		return nil, false
	}
	return sess.Identity, true
}
