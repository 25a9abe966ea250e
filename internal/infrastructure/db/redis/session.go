package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/voyagekit/flight-booking/internal/core/ports"
)

// SessionStore tracks live login sessions in Redis.
// Key format: session:<username>:<token_id>
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Create registers a session. The key expires with the token, so a session
// never outlives the credential that names it.
func (s *SessionStore) Create(ctx context.Context, session ports.Session, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(session), "1", ttl).Err(); err != nil {
		return fmt.Errorf("session create: %w", err)
	}
	return nil
}

// IsActive reports whether the session has been created and not yet revoked
// or expired.
func (s *SessionStore) IsActive(ctx context.Context, session ports.Session) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(session)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

// Revoke deletes the session. Deleting an absent key is a no-op, which
// makes logout idempotent.
func (s *SessionStore) Revoke(ctx context.Context, session ports.Session) error {
	if err := s.client.Del(ctx, s.key(session)).Err(); err != nil {
		return fmt.Errorf("session revoke: %w", err)
	}
	return nil
}

func (s *SessionStore) key(session ports.Session) string {
	return fmt.Sprintf("session:%s:%s", session.Username, session.TokenID)
}
