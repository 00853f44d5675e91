package ports

import (
	"context"
	"time"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
)

// Session is the portal-owned record of an authenticated principal: the
// backend-issued bearer token plus the principal projection. It is the only
// durable state the portal keeps.
type Session struct {
	ID        string           `json:"id"`
	Token     string           `json:"token"`
	Principal domain.Principal `json:"principal"`
	CreatedAt time.Time        `json:"created_at"`
}

// SessionStore persists sessions. Find returns domain.ErrNoSession when the
// id is unknown or the stored record has expired out.
type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	Find(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionService owns login, logout, and session resolution.
type SessionService interface {
	// Login exchanges credentials upstream and persists a fresh session.
	// Nothing is persisted when the exchange fails.
	Login(ctx context.Context, role domain.Role, email, password string) (*Session, error)
	// Logout removes the session record unconditionally.
	Logout(ctx context.Context, sessionID string) error
	// Resolve loads and validates a stored session. Records with an unknown
	// role tag or an expired token are discarded and reported as absent.
	Resolve(ctx context.Context, sessionID string) (*Session, error)
	// SetPrincipal replaces the cached principal after a profile edit.
	SetPrincipal(ctx context.Context, sessionID string, p domain.Principal) error
	// WhoAmI fetches the principal's full record from upstream.
	WhoAmI(ctx context.Context, token string) (*domain.Principal, error)
}
