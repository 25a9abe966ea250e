package ports

import (
	"context"
	"time"
)

// Session identifies one authenticated login. It is an explicit value
// threaded through every call that needs identity rather than process-wide
// state, so any number of sessions may be live at once.
type Session struct {
	Username string
	TokenID  string
}

// SessionStore tracks which issued tokens are still live. Login registers a
// session, logout revokes it, and every session-scoped operation checks it.
type SessionStore interface {
	Create(ctx context.Context, s Session, ttl time.Duration) error
	IsActive(ctx context.Context, s Session) (bool, error)
	// Revoke removes the session. Revoking an absent session is not an error.
	Revoke(ctx context.Context, s Session) error
}
