package ports

import (
	"context"

	"github.com/voyagekit/flight-booking/internal/core/domain"
)

// BookInput carries all data needed to create a reservation. FlightDate is
// the textual dd/mm/yyyy HH:MM form; parsing happens in the service.
type BookInput struct {
	FlightDate   string
	PremiumCabin bool
	Tickets      int
	Airline      string
	Username     string
}

// ConfirmInput targets one reservation by its owner and explicit zero-based
// index in insertion order, and carries the confirmation details to attach.
type ConfirmInput struct {
	Username     string
	Index        int
	CardNumber   string
	Installments int
	CabinClass   string
	SeatNumber   string
	Bags         int
}

// ItineraryEntry is one rendered reservation in a user's itinerary.
type ItineraryEntry struct {
	Index      int
	FlightDate string
	Airline    string
	Tickets    int
	Cabin      string
	Confirmed  bool
	SeatNumber string
	CabinClass string
}

// Itinerary is the ordered list of a user's reservations plus its fixed
// textual rendering. Zero entries is a valid, empty itinerary.
type Itinerary struct {
	Username string
	Entries  []ItineraryEntry
	Text     string
}

// BookingService covers reservation creation, confirmation and the
// itinerary query.
type BookingService interface {
	Book(ctx context.Context, input BookInput) (*domain.Reservation, error)
	Confirm(ctx context.Context, input ConfirmInput) (*domain.Reservation, error)
	Itinerary(ctx context.Context, username string) (*Itinerary, error)
}
