package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

type stubAuthGateway struct {
	loginFn          func(ctx context.Context, role domain.Role, email, password string) (string, *domain.Principal, error)
	whoAmIFn         func(ctx context.Context, token string) (*domain.Principal, error)
	changePasswordFn func(ctx context.Context, token string, role domain.Role, current, next string) error
}

func (s *stubAuthGateway) Login(ctx context.Context, role domain.Role, email, password string) (string, *domain.Principal, error) {
	return s.loginFn(ctx, role, email, password)
}

func (s *stubAuthGateway) WhoAmI(ctx context.Context, token string) (*domain.Principal, error) {
	return s.whoAmIFn(ctx, token)
}

func (s *stubAuthGateway) ChangePassword(ctx context.Context, token string, role domain.Role, current, next string) error {
	return s.changePasswordFn(ctx, token, role, current, next)
}

// memoryStore is an in-memory ports.SessionStore for tests.
type memoryStore struct {
	sessions map[string]ports.Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: map[string]ports.Session{}}
}

func (m *memoryStore) Save(_ context.Context, s *ports.Session) error {
	m.sessions[s.ID] = *s
	return nil
}

func (m *memoryStore) Find(_ context.Context, id string) (*ports.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNoSession
	}
	copy := s
	return &copy, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "v_1"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSessionService_Login_PersistsSession(t *testing.T) {
	store := newMemoryStore()
	gw := &stubAuthGateway{
		loginFn: func(_ context.Context, role domain.Role, email, password string) (string, *domain.Principal, error) {
			if role != domain.RoleVisitor || email != "v@x.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s %s", role, email, password)
			}
			return "tok_abc", &domain.Principal{ID: "v_1", Email: email, Role: role}, nil
		},
	}
	svc := NewSessionService(gw, store, zerolog.Nop())

	sess, err := svc.Login(context.Background(), domain.RoleVisitor, "v@x.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.ID == "" || sess.Token != "tok_abc" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if sess.Principal.Role != domain.RoleVisitor || sess.Principal.Email != "v@x.com" {
		t.Fatalf("unexpected principal: %+v", sess.Principal)
	}

	stored, err := store.Find(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
	if stored.Token != "tok_abc" {
		t.Fatalf("stored token mismatch: %s", stored.Token)
	}
}

func TestSessionService_Login_FailurePersistsNothing(t *testing.T) {
	store := newMemoryStore()
	gw := &stubAuthGateway{
		loginFn: func(context.Context, domain.Role, string, string) (string, *domain.Principal, error) {
			return "", nil, &domain.UpstreamError{StatusCode: 401, Message: "Invalid email or password"}
		},
	}
	svc := NewSessionService(gw, store, zerolog.Nop())

	_, err := svc.Login(context.Background(), domain.RoleExhibitor, "e@x.com", "bad")
	if err == nil {
		t.Fatalf("expected error")
	}
	if domain.UpstreamMessage(err) != "Invalid email or password" {
		t.Fatalf("backend message not surfaced: %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("failed login must persist nothing, got %d sessions", len(store.sessions))
	}
}

func TestSessionService_Login_RejectsUnknownRole(t *testing.T) {
	called := false
	gw := &stubAuthGateway{
		loginFn: func(context.Context, domain.Role, string, string) (string, *domain.Principal, error) {
			called = true
			return "", nil, nil
		},
	}
	svc := NewSessionService(gw, newMemoryStore(), zerolog.Nop())

	_, err := svc.Login(context.Background(), domain.Role("admin"), "a@x.com", "pw")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if called {
		t.Fatalf("gateway must not be called for unknown role")
	}
}

func TestSessionService_Logout_AlwaysClears(t *testing.T) {
	store := newMemoryStore()
	store.sessions["s1"] = ports.Session{ID: "s1", Token: "tok"}
	svc := NewSessionService(&stubAuthGateway{}, store, zerolog.Nop())

	if err := svc.Logout(context.Background(), "s1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("logout must clear the session")
	}

	// Logging out an unknown session is still a success.
	if err := svc.Logout(context.Background(), "ghost"); err != nil {
		t.Fatalf("logout of absent session: %v", err)
	}
}

func TestSessionService_Resolve_DiscardsBadRole(t *testing.T) {
	store := newMemoryStore()
	store.sessions["s1"] = ports.Session{
		ID:        "s1",
		Token:     signedToken(t, time.Now().Add(time.Hour)),
		Principal: domain.Principal{ID: "x", Role: "superuser"},
	}
	svc := NewSessionService(&stubAuthGateway{}, store, zerolog.Nop())

	_, err := svc.Resolve(context.Background(), "s1")
	if !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if _, ok := store.sessions["s1"]; ok {
		t.Fatalf("invalid session must be discarded from the store")
	}
}

func TestSessionService_Resolve_DiscardsExpiredToken(t *testing.T) {
	store := newMemoryStore()
	store.sessions["s1"] = ports.Session{
		ID:        "s1",
		Token:     signedToken(t, time.Now().Add(-time.Hour)),
		Principal: domain.Principal{ID: "v_1", Role: domain.RoleVisitor},
	}
	svc := NewSessionService(&stubAuthGateway{}, store, zerolog.Nop())

	_, err := svc.Resolve(context.Background(), "s1")
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if _, ok := store.sessions["s1"]; ok {
		t.Fatalf("expired session must be discarded from the store")
	}
}

func TestSessionService_Resolve_OpaqueTokenStillValid(t *testing.T) {
	store := newMemoryStore()
	store.sessions["s1"] = ports.Session{
		ID:        "s1",
		Token:     "opaque-not-a-jwt",
		Principal: domain.Principal{ID: "e_1", Role: domain.RoleExhibitor},
	}
	svc := NewSessionService(&stubAuthGateway{}, store, zerolog.Nop())

	sess, err := svc.Resolve(context.Background(), "s1")
	if err != nil {
		t.Fatalf("opaque tokens must not be treated as expired: %v", err)
	}
	if sess.Principal.ID != "e_1" {
		t.Fatalf("unexpected principal: %+v", sess.Principal)
	}
}

func TestSessionService_SetPrincipal(t *testing.T) {
	store := newMemoryStore()
	store.sessions["s1"] = ports.Session{
		ID:        "s1",
		Token:     "tok",
		Principal: domain.Principal{ID: "e_1", Name: "Old", Role: domain.RoleExhibitor},
	}
	svc := NewSessionService(&stubAuthGateway{}, store, zerolog.Nop())

	updated := domain.Principal{ID: "e_1", Name: "New", Role: domain.RoleExhibitor}
	if err := svc.SetPrincipal(context.Background(), "s1", updated); err != nil {
		t.Fatalf("set principal: %v", err)
	}
	if store.sessions["s1"].Principal.Name != "New" {
		t.Fatalf("principal not replaced: %+v", store.sessions["s1"].Principal)
	}
}
