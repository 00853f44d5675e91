package service

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// Browsers holds one catalog Browser per session. Entries are created on
// first use and evicted lazily once idle longer than the session TTL, so the
// registry never outgrows the set of live sessions.
type Browsers struct {
	mu      sync.Mutex
	svc     ports.CatalogService
	log     zerolog.Logger
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*browserEntry
}

type browserEntry struct {
	browser  *Browser
	lastUsed time.Time
}

// NewBrowsers creates a registry bound to the catalog service. If ttl <= 0,
// defaultBrowserTTL is used.
func NewBrowsers(svc ports.CatalogService, ttl time.Duration, log zerolog.Logger) *Browsers {
	if ttl <= 0 {
		ttl = defaultBrowserTTL
	}
	return &Browsers{
		svc:     svc,
		log:     log,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*browserEntry),
	}
}

const defaultBrowserTTL = 24 * time.Hour

// For returns the session's browser, creating it on first use.
func (r *Browsers) For(sessionID, token string) *Browser {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()

	e, ok := r.entries[sessionID]
	if !ok {
		e = &browserEntry{browser: NewBrowser(r.svc, token, r.log)}
		r.entries[sessionID] = e
	}
	e.lastUsed = r.now()
	return e.browser
}

// Drop discards the session's browser. Logout calls this so a re-login
// starts from a clean catalog screen.
func (r *Browsers) Drop(sessionID string) {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
}

// sweep evicts entries idle past the TTL. Caller holds the lock.
func (r *Browsers) sweep() {
	cutoff := r.now().Add(-r.ttl)
	for id, e := range r.entries {
		if e.lastUsed.Before(cutoff) {
			delete(r.entries, id)
		}
	}
}
