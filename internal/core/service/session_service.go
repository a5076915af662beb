package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/medconnect/portal-api/internal/api/metrics"
	"github.com/medconnect/portal-api/internal/core/domain"
	"github.com/medconnect/portal-api/internal/core/ports"
)

// SessionService implements login, register, and logout as timed in-memory
// state replacements. There is no credential verification: login is a
// stand-in for a real authentication call and fabricates an identity when
// the email is unknown to the process-local registry.
type SessionService struct {
	store       ports.SessionStore
	registry    ports.IdentityRegistry
	drafts      ports.PictureDrafts
	jwtSecret   string
	tokenTTL    time.Duration
	submitDelay time.Duration
	log         zerolog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewSessionService(
	store ports.SessionStore,
	registry ports.IdentityRegistry,
	drafts ports.PictureDrafts,
	jwtSecret string,
	tokenTTL time.Duration,
	submitDelay time.Duration,
	log zerolog.Logger,
) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		store:       store,
		registry:    registry,
		drafts:      drafts,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		submitDelay: submitDelay,
		log:         log,
		inflight:    make(map[string]struct{}),
	}
}

// Login establishes a session for the given email and selected role. The
// password is accepted but never checked. A registered identity for the
// email wins over the fabricated placeholder, and its role — fixed at
// creation — overrides the selector.
func (s *SessionService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	release, err := s.acquire(in.Email)
	if err != nil {
		return nil, err
	}
	defer release()

	// Simulated backend latency. No cancellation: a started submission
	// always commits (the submit control is disabled client-side meanwhile).
	s.wait()

	identity, known := s.registry.FindByEmail(normalizeEmail(in.Email))
	if !known {
		identity = mockIdentity(in.Email, in.Role)
	}

	result, err := s.establish(identity)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues(string(identity.Role)).Inc()
	s.log.Info().
		Str("username", identity.Username).
		Str("role", string(identity.Role)).
		Bool("registered", known).
		Msg("login established session")
	return result, nil
}

// Register validates nothing itself (the form layer already has), records
// the identity in the registry, and establishes the session immediately.
// A reused username or email is rejected with domain.ErrUserExists.
func (s *SessionService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if !in.Identity.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	release, err := s.acquire(in.Identity.Email)
	if err != nil {
		return nil, err
	}
	defer release()

	s.wait()

	identity := in.Identity
	identity.Email = normalizeEmail(identity.Email)
	if in.PictureDraftID != "" {
		if pic, ok := s.drafts.Picture(in.PictureDraftID); ok {
			identity.ProfilePicture = pic
		}
	}

	if err := s.registry.Create(&identity); err != nil {
		return nil, err
	}

	result, err := s.establish(&identity)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(identity.Role)).Inc()
	s.log.Info().
		Str("username", identity.Username).
		Str("role", string(identity.Role)).
		Msg("registration established session")
	return result, nil
}

// Logout clears the session. Calling it for an unknown or already-cleared
// session is a no-op, so logout is idempotent.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	s.store.Delete(sessionID)
	metrics.ActiveSessions.Set(float64(s.store.Len()))
	metrics.LogoutsTotal.Inc()
	return nil
}

// Authenticate resolves a bearer token to a live session. Any failure —
// bad signature, expired token, session gone after logout — yields nil,
// which callers treat as anonymous.
func (s *SessionService) Authenticate(token string) *domain.Session {
	if token == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	sid, _ := claims["sid"].(string)
	sess, ok := s.store.Get(sid)
	if !ok {
		return nil
	}
	return sess
}

// establish replaces the session state and mints its token. The redirect is
// computed after the mutation so both land in the same logical turn.
func (s *SessionService) establish(identity *domain.User) (*ports.AuthResult, error) {
	sess, err := s.store.Create(identity)
	if err != nil {
		return nil, err
	}
	metrics.ActiveSessions.Set(float64(s.store.Len()))

	token, err := s.mintToken(sess)
	if err != nil {
		s.store.Delete(sess.ID)
		return nil, err
	}

	return &ports.AuthResult{
		Token:      token,
		Session:    sess,
		User:       identity,
		RedirectTo: identity.Role.DashboardPath(),
	}, nil
}

func (s *SessionService) mintToken(sess *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      sess.ID,
		"username": sess.Identity.Username,
		"role":     string(sess.Identity.Role),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// acquire is the re-entrancy guard: one pending submission per submitter.
// The returned release must be deferred by the caller.
func (s *SessionService) acquire(email string) (func(), error) {
	key := normalizeEmail(email)

	s.mu.Lock()
	if _, busy := s.inflight[key]; busy {
		s.mu.Unlock()
		metrics.SubmissionsRejectedTotal.Inc()
		return nil, domain.ErrSubmissionInFlight
	}
	s.inflight[key] = struct{}{}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
	}, nil
}

func (s *SessionService) wait() {
	if s.submitDelay > 0 {
		time.Sleep(s.submitDelay)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// mockIdentity fabricates the identity a real backend would have looked up.
// Defaults mirror the product's demo data and are keyed off the selected role.
func mockIdentity(email string, role domain.Role) *domain.User {
	first := "John"
	if role == domain.RoleDoctor {
		first = "Dr. Jane"
	}

	username := email
	if at := strings.Index(email, "@"); at > 0 {
		username = email[:at]
	}

	return &domain.User{
		FirstName: first,
		LastName:  "Doe",
		Username:  username,
		Email:     normalizeEmail(email),
		Address: domain.Address{
			Line1:   "123 Main St",
			City:    "Springfield",
			State:   "IL",
			Pincode: "62704",
		},
		Role: role,
	}
}
