package ports

import (
	"context"

	"github.com/voyagekit/flight-booking/internal/core/domain"
)

// UserRepository owns the authoritative collection of user accounts. Every
// mutating call leaves the in-memory collection and the backing store in
// agreement before it returns; there is no partial-success state.
type UserRepository interface {
	// FindByUsername performs a case-sensitive exact match and returns
	// domain.ErrUserNotFound when no record matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// Exists reports whether a record with the username is present.
	Exists(ctx context.Context, username string) bool

	// Add appends a new user and persists the collection. It returns
	// domain.ErrUserExists when the username is already taken, in which case
	// neither memory nor the store is touched.
	Add(ctx context.Context, user *domain.User) error

	// UpdateInPlace replaces the record whose username matches and persists
	// the collection. It returns domain.ErrUserNotFound when absent.
	UpdateInPlace(ctx context.Context, user *domain.User) error
}
