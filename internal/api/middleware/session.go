package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medconnect/portal-api/internal/core/domain"
	"github.com/medconnect/portal-api/internal/core/ports"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "mc_session"

// sessionKey is the echo context key under which the current session is
// stored. The value is always a typed *domain.Session once the Session
// middleware has run; nil means anonymous.
const sessionKey = "session"

// Session resolves the request's session token (cookie first, then bearer
// header) and attaches the result to the context. It never rejects a
// request: an absent, invalid, or expired token simply yields an anonymous
// session for the guard to act on.
func Session(svc ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(sessionKey, svc.Authenticate(requestToken(c)))
			return next(c)
		}
	}
}

// SessionFromContext returns the session attached by the Session middleware.
// A nil return means anonymous. If the middleware never ran, the handler is
// wired incorrectly; that is a structural defect, so it panics loudly
// instead of masquerading as an authentication failure.
func SessionFromContext(c echo.Context) *domain.Session {
	v := c.Get(sessionKey)
	if v == nil {
		panic("middleware: session accessed outside Session middleware scope")
	}
	sess, ok := v.(*domain.Session)
	if !ok {
		panic("middleware: session context holds unexpected type")
	}
	return sess
}

func requestToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
