package ports

import "github.com/medconnect/portal-api/internal/core/domain"

// SessionStore holds live sessions in process memory. Implementations must
// be safe for concurrent use; nothing here survives a restart.
type SessionStore interface {
	Create(identity *domain.User) (*domain.Session, error)
	Get(id string) (*domain.Session, bool)
	Delete(id string)
	Len() int
}

// IdentityRegistry enforces the registration uniqueness policy: a second
// register with an already-used username or email is rejected with
// domain.ErrUserExists. The registry is volatile like everything else.
type IdentityRegistry interface {
	Create(identity *domain.User) error
	FindByEmail(email string) (*domain.User, bool)
}
