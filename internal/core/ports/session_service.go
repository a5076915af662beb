package ports

import (
	"context"

	"github.com/medconnect/portal-api/internal/core/domain"
)

// LoginInput carries the already-validated login form fields.
type LoginInput struct {
	Email    string
	Password string
	Role     domain.Role
}

// RegisterInput carries the validated signup draft. Identity.ProfilePicture
// is empty when PictureDraftID is set; the service resolves the draft.
type RegisterInput struct {
	Identity       domain.User
	Password       string
	PictureDraftID string
}

// AuthResult is returned by every successful session mutation. RedirectTo is
// the navigation decision computed in the same turn as the mutation.
type AuthResult struct {
	Token      string
	Session    *domain.Session
	User       *domain.User
	RedirectTo string
}

// SessionService owns the session lifecycle: establishing sessions on
// login/register (after the simulated submission delay), tearing them down on
// logout, and resolving bearer tokens back to live sessions.
type SessionService interface {
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(token string) *domain.Session
}
