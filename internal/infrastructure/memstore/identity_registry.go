package memstore

import (
	"strings"
	"sync"

	"github.com/medconnect/portal-api/internal/core/domain"
)

// IdentityRegistry records registered identities for the lifetime of the
// process. It exists to give register a duplicate policy: a reused username
// or email is rejected rather than overwritten.
type IdentityRegistry struct {
	mu      sync.RWMutex
	byUser  map[string]*domain.User
	byEmail map[string]*domain.User
}

func NewIdentityRegistry() *IdentityRegistry {
	return &IdentityRegistry{
		byUser:  make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

// Create stores the identity, rejecting duplicates on username or email.
func (r *IdentityRegistry) Create(identity *domain.User) error {
	userKey := strings.ToLower(identity.Username)
	emailKey := strings.ToLower(identity.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUser[userKey]; exists {
		return domain.ErrUserExists
	}
	if _, exists := r.byEmail[emailKey]; exists {
		return domain.ErrUserExists
	}

	clone := *identity
	r.byUser[userKey] = &clone
	r.byEmail[emailKey] = &clone
	return nil
}

// FindByEmail returns a copy of the registered identity for the email.
func (r *IdentityRegistry) FindByEmail(email string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, false
	}
	clone := *identity
	return &clone, true
}
