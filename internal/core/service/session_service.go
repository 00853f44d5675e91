package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/expofair/exhibitor-portal/internal/api/metrics"
	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// SessionService owns login, logout, and session resolution. The stored
// record is the portal's analogue of the old client-local userToken/userData
// pair, so the same validation applies on every load: a record with a role
// tag the portal does not know, or a token past its expiry, is discarded and
// treated as logged-out.
type SessionService struct {
	gw    ports.AuthGateway
	store ports.SessionStore
	log   zerolog.Logger
}

func NewSessionService(gw ports.AuthGateway, store ports.SessionStore, log zerolog.Logger) *SessionService {
	return &SessionService{gw: gw, store: store, log: log}
}

// Login exchanges credentials upstream and persists a fresh session under a
// random id. Nothing is persisted when the exchange fails.
func (s *SessionService) Login(ctx context.Context, role domain.Role, email, password string) (*ports.Session, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	token, principal, err := s.gw.Login(ctx, role, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(role), "failure").Inc()
		return nil, err
	}

	sess := &ports.Session{
		ID:        uuid.NewString(),
		Token:     token,
		Principal: *principal,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(string(role), "success").Inc()
	s.log.Info().Str("role", string(role)).Str("principal_id", principal.ID).Msg("principal logged in")
	return sess, nil
}

// Logout removes the session record unconditionally. No upstream round-trip.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Resolve loads and validates a stored session.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) (*ports.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrNoSession
	}

	sess, err := s.store.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.Principal.Role.Valid() {
		metrics.SessionsDiscardedTotal.WithLabelValues("bad_role").Inc()
		s.discard(ctx, sessionID, "unknown role tag")
		return nil, domain.ErrNoSession
	}
	if tokenExpired(sess.Token, time.Now()) {
		metrics.SessionsDiscardedTotal.WithLabelValues("expired").Inc()
		s.discard(ctx, sessionID, "token expired")
		return nil, domain.ErrSessionExpired
	}

	return sess, nil
}

// SetPrincipal replaces the cached principal after a profile edit. The
// Profile flow is the sole caller.
func (s *SessionService) SetPrincipal(ctx context.Context, sessionID string, p domain.Principal) error {
	sess, err := s.store.Find(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.Principal = p
	if err := s.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("update session principal: %w", err)
	}
	return nil
}

// WhoAmI fetches the principal's full record from upstream.
func (s *SessionService) WhoAmI(ctx context.Context, token string) (*domain.Principal, error) {
	return s.gw.WhoAmI(ctx, token)
}

func (s *SessionService) discard(ctx context.Context, sessionID, reason string) {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to discard invalid session")
		return
	}
	s.log.Debug().Str("session_id", sessionID).Str("reason", reason).Msg("stored session discarded")
}

// tokenExpired inspects the backend-issued token's exp claim without
// verifying the signature; the backend owns the key, the portal only needs
// the lifetime. Tokens that do not parse as JWTs, or carry no exp claim, are
// treated as non-expiring opaque tokens.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
