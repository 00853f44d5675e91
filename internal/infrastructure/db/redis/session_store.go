package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionStore persists session records in Redis with a sliding TTL.
// Key format: session:<session_id>
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// If ttl <= 0, defaultSessionTTL is used.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Save writes the session record, resetting its TTL.
func (s *SessionStore) Save(ctx context.Context, sess *ports.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session store: marshal: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session store: save: %w", err)
	}
	return nil
}

// Find loads a session record. A missing key maps to domain.ErrNoSession;
// a record that fails to decode is deleted and likewise reported as absent.
func (s *SessionStore) Find(ctx context.Context, id string) (*ports.Session, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("session store: find: %w", err)
	}

	var sess ports.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		_ = s.client.Del(ctx, s.key(id)).Err()
		return nil, domain.ErrNoSession
	}
	return &sess, nil
}

// Delete removes the session record. Deleting an absent session is not an
// error; logout must always succeed.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("session store: delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
