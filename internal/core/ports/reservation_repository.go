package ports

import (
	"context"

	"github.com/voyagekit/flight-booking/internal/core/domain"
)

// ReservationRepository owns the authoritative collection of reservations.
// A user may hold any number of reservations; there is no uniqueness rule.
type ReservationRepository interface {
	// Add appends a reservation and persists the collection.
	Add(ctx context.Context, r *domain.Reservation) error

	// FindAllByUsername returns the user's reservations in insertion order.
	// A user with no reservations yields an empty slice, not an error.
	FindAllByUsername(ctx context.Context, username string) ([]domain.Reservation, error)

	// UpdateConfirmation attaches confirmation details to the index-th
	// reservation (zero-based, insertion order) held by username and
	// persists the collection. It returns domain.ErrReservationNotFound
	// when the index does not resolve to a record.
	UpdateConfirmation(ctx context.Context, username string, index int, conf domain.Confirmation) (*domain.Reservation, error)
}
