package ports

import (
	"context"

	"github.com/voyagekit/flight-booking/internal/core/domain"
)

// AccountService covers registration, authentication and the two in-place
// account mutations.
type AccountService interface {
	// Register creates a new account. The tier string must parse to base or
	// premium; a taken username is rejected with domain.ErrUserExists.
	Register(ctx context.Context, username, password, tier string) (*domain.User, error)

	// Login verifies credentials and on success issues a signed token bound
	// to a new session. Failure is reported as domain.ErrInvalidCredentials
	// regardless of cause and leaves existing sessions untouched.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)

	// Logout revokes the session. Idempotent.
	Logout(ctx context.Context, session Session) error

	// ChangePassword updates the authenticated user's password.
	ChangePassword(ctx context.Context, session Session, newPassword string) (*domain.User, error)

	// ToggleTier flips the authenticated user's tier between base and premium.
	ToggleTier(ctx context.Context, session Session) (*domain.User, error)

	// CurrentUser resolves the session to its backing user record, always
	// re-read from the repository rather than a cached copy.
	CurrentUser(ctx context.Context, session Session) (*domain.User, error)
}
