package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medconnect/portal-api/internal/core/domain"
	"github.com/medconnect/portal-api/internal/core/ports"
	"github.com/medconnect/portal-api/internal/infrastructure/memstore"
)

func newTestService(submitDelay time.Duration) (*SessionService, *memstore.DraftStore) {
	drafts := memstore.NewDraftStore()
	svc := NewSessionService(
		memstore.NewSessionStore(),
		memstore.NewIdentityRegistry(),
		drafts,
		"test-secret",
		time.Hour,
		submitDelay,
		zerolog.Nop(),
	)
	return svc, drafts
}

func patientInput(email string) ports.RegisterInput {
	return ports.RegisterInput{
		Identity: domain.User{
			FirstName: "John",
			LastName:  "Doe",
			Username:  "johndoe",
			Email:     email,
			Address: domain.Address{
				Line1:   "123 Main St",
				City:    "Springfield",
				State:   "IL",
				Pincode: "62704",
			},
			Role: domain.RolePatient,
		},
		Password: "secret",
	}
}

func TestSessionService_Register_RoundTrip(t *testing.T) {
	svc, _ := newTestService(0)

	result, err := svc.Register(context.Background(), patientInput("john@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a signed token")
	}
	if result.RedirectTo != "/patient-dashboard" {
		t.Fatalf("redirect: got %q", result.RedirectTo)
	}

	sess := svc.Authenticate(result.Token)
	if !sess.Authenticated() {
		t.Fatal("token must resolve to an authenticated session")
	}
	if sess.Identity.Username != "johndoe" || sess.Identity.Email != "john@example.com" {
		t.Fatalf("unexpected identity: %+v", sess.Identity)
	}
}

func TestSessionService_Register_Duplicate(t *testing.T) {
	svc, _ := newTestService(0)

	if _, err := svc.Register(context.Background(), patientInput("john@example.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), patientInput("john@example.com"))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestSessionService_Register_InvalidRole(t *testing.T) {
	svc, _ := newTestService(0)

	in := patientInput("john@example.com")
	in.Identity.Role = "admin"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestSessionService_Register_ResolvesPictureDraft(t *testing.T) {
	svc, drafts := newTestService(0)
	drafts.SetPicture("draft-1", "data:image/png;base64,AAAA")

	in := patientInput("john@example.com")
	in.PictureDraftID = "draft-1"

	result, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.ProfilePicture != "data:image/png;base64,AAAA" {
		t.Fatalf("profile picture: got %q", result.User.ProfilePicture)
	}
}

func TestSessionService_Register_UnknownDraftIgnored(t *testing.T) {
	svc, _ := newTestService(0)

	in := patientInput("john@example.com")
	in.PictureDraftID = "draft-missing"

	result, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.ProfilePicture != "" {
		t.Fatalf("expected no picture, got %q", result.User.ProfilePicture)
	}
}

func TestSessionService_Login_MockDoctorIdentity(t *testing.T) {
	svc, _ := newTestService(0)

	result, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "jane.smith@clinic.org",
		Password: "whatever",
		Role:     domain.RoleDoctor,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	u := result.User
	if u.FirstName != "Dr. Jane" || u.LastName != "Doe" {
		t.Fatalf("fabricated name: got %q %q", u.FirstName, u.LastName)
	}
	if u.Username != "jane.smith" {
		t.Fatalf("username must be the email local part, got %q", u.Username)
	}
	if u.Address.City != "Springfield" || u.Address.Pincode != "62704" {
		t.Fatalf("placeholder address: got %+v", u.Address)
	}
	if result.RedirectTo != "/doctor-dashboard" {
		t.Fatalf("redirect: got %q", result.RedirectTo)
	}
}

func TestSessionService_Login_MockPatientIdentity(t *testing.T) {
	svc, _ := newTestService(0)

	result, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "someone@example.com",
		Password: "whatever",
		Role:     domain.RolePatient,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.User.FirstName != "John" {
		t.Fatalf("fabricated patient name: got %q", result.User.FirstName)
	}
	if result.RedirectTo != "/patient-dashboard" {
		t.Fatalf("redirect: got %q", result.RedirectTo)
	}
}

func TestSessionService_Login_PrefersRegisteredIdentity(t *testing.T) {
	svc, _ := newTestService(0)

	in := patientInput("John@Example.com")
	in.Identity.FirstName = "Registered"
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("register: %v", err)
	}

	// The registered role wins over the login selector.
	result, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "john@example.com",
		Password: "whatever",
		Role:     domain.RoleDoctor,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.User.FirstName != "Registered" {
		t.Fatalf("expected the registered identity, got %+v", result.User)
	}
	if result.User.Role != domain.RolePatient {
		t.Fatalf("registered role must win, got %q", result.User.Role)
	}
	if result.RedirectTo != "/patient-dashboard" {
		t.Fatalf("redirect: got %q", result.RedirectTo)
	}
}

func TestSessionService_Logout_Idempotent(t *testing.T) {
	svc, _ := newTestService(0)
	ctx := context.Background()

	if err := svc.Logout(ctx, ""); err != nil {
		t.Fatalf("anonymous logout: %v", err)
	}
	if err := svc.Logout(ctx, "MC-UNKNOWN"); err != nil {
		t.Fatalf("unknown session logout: %v", err)
	}

	result, err := svc.Login(ctx, ports.LoginInput{Email: "a@b.c", Password: "secret", Role: domain.RolePatient})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx, result.Session.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if svc.Authenticate(result.Token) != nil {
		t.Fatal("token must stop resolving after logout")
	}
	if err := svc.Logout(ctx, result.Session.ID); err != nil {
		t.Fatalf("repeated logout: %v", err)
	}
}

func TestSessionService_Authenticate_InvalidTokens(t *testing.T) {
	svc, _ := newTestService(0)

	if svc.Authenticate("") != nil {
		t.Fatal("empty token must be anonymous")
	}
	if svc.Authenticate("not-a-jwt") != nil {
		t.Fatal("malformed token must be anonymous")
	}

	other, _ := newTestService(0)
	other.jwtSecret = "another-secret"
	result, err := other.Login(context.Background(), ports.LoginInput{Email: "a@b.c", Password: "secret", Role: domain.RolePatient})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if svc.Authenticate(result.Token) != nil {
		t.Fatal("token signed with a different secret must be anonymous")
	}
}

func TestSessionService_RejectsConcurrentSubmission(t *testing.T) {
	svc, _ := newTestService(100 * time.Millisecond)
	ctx := context.Background()
	in := ports.LoginInput{Email: "busy@example.com", Password: "secret", Role: domain.RolePatient}

	started := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		close(started)
		_, firstErr = svc.Login(ctx, in)
	}()

	<-started
	time.Sleep(20 * time.Millisecond)

	if _, err := svc.Login(ctx, in); !errors.Is(err, domain.ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	wg.Wait()
	if firstErr != nil {
		t.Fatalf("first submission: %v", firstErr)
	}

	// The guard releases once the first submission commits.
	if _, err := svc.Login(ctx, in); err != nil {
		t.Fatalf("login after release: %v", err)
	}
}

func TestSessionService_DifferentSubmittersDoNotBlock(t *testing.T) {
	svc, _ := newTestService(50 * time.Millisecond)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	emails := []string{"one@example.com", "two@example.com"}
	for i, email := range emails {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			_, errs[i] = svc.Login(ctx, ports.LoginInput{Email: email, Password: "secret", Role: domain.RolePatient})
		}(i, email)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("submitter %s: %v", emails[i], err)
		}
	}
}
