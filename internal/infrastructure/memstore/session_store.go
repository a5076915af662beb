// Package memstore provides the volatile, process-local stores backing the
// portal. Nothing here is persisted: every store starts empty on boot and is
// gone on shutdown, which is the product's documented behavior.
package memstore

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/medconnect/portal-api/internal/core/domain"
)

// SessionStore keeps live sessions keyed by session ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*domain.Session)}
}

// Create registers a new session for the given identity and returns it.
func (s *SessionStore) Create(identity *domain.User) (*domain.Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	sess := &domain.Session{
		ID:        id,
		Identity:  identity,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return sess, nil
}

// Get returns the session with the given ID, if it is still live.
func (s *SessionStore) Get(id string) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete removes a session. Removing an unknown ID is a no-op.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// generateSessionID returns a random ID in the format MC-XXXXXXXXXXXXXXXX.
func generateSessionID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("MC-%X", b), nil
}
