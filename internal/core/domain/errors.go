package domain

import "errors"

var (
	// ErrUserNotFound is returned when no user record matches a username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned on an attempt to register a taken username.
	ErrUserExists = errors.New("username already in use")
	// ErrInvalidCredentials is returned on login failure. It intentionally
	// does not distinguish an unknown user from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated is returned when an operation requires a bound
	// session and none is present or it has been revoked.
	ErrUnauthenticated = errors.New("no authenticated session")

	// ErrReservationNotFound is returned when a reservation index does not
	// resolve to a record.
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidTier         = errors.New("tier must be base or premium")
	ErrMissingFields       = errors.New("required fields are missing")
	ErrInvalidFlightDate   = errors.New("flight date must be dd/mm/yyyy HH:MM")
	ErrInvalidTicketCount  = errors.New("ticket count must be positive")

	// ErrStoreNotFound is returned when a data file is missing on load.
	// First-run callers must create an empty file before loading.
	ErrStoreNotFound = errors.New("data file not found")
	// ErrStoreSave wraps write failures. Memory is already updated when it
	// occurs; callers should retry the save, not the whole operation.
	ErrStoreSave = errors.New("data file save failed")
)
