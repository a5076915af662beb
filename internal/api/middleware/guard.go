package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medconnect/portal-api/internal/api/metrics"
	"github.com/medconnect/portal-api/internal/core/domain"
)

// Guard is the navigation guard applied to role-owned views. For every
// request it re-evaluates the same decision procedure against the current
// session — there is no memoized state:
//
//  1. anonymous session          → redirect to /login
//  2. authenticated, wrong role  → redirect to the session's own dashboard
//  3. otherwise                  → render the requested view
//
// Mismatched roles are rerouted silently, never answered with an error.
func Guard(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFromContext(c)

			if !sess.Authenticated() {
				metrics.GuardRedirectsTotal.WithLabelValues("anonymous").Inc()
				return c.Redirect(http.StatusFound, "/login")
			}

			if required != "" && sess.Role() != required {
				metrics.GuardRedirectsTotal.WithLabelValues("role_mismatch").Inc()
				return c.Redirect(http.StatusFound, sess.Role().DashboardPath())
			}

			return next(c)
		}
	}
}

// RedirectLost handles every path without a route definition: redirect to
// the public landing view, regardless of session state.
func RedirectLost(c echo.Context) error {
	metrics.GuardRedirectsTotal.WithLabelValues("unknown_path").Inc()
	return c.Redirect(http.StatusFound, "/")
}
