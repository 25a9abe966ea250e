package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/voyagekit/flight-booking/internal/core/ports"
)

// Itinerary renders the user's reservations in insertion order with a fixed
// template. A user with no reservations gets an empty but valid itinerary,
// not an error.
func (s *BookingService) Itinerary(ctx context.Context, username string) (*ports.Itinerary, error) {
	list, err := s.reservations.FindAllByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	entries := make([]ports.ItineraryEntry, 0, len(list))
	var b strings.Builder
	fmt.Fprintf(&b, "Itinerary for %s:", username)

	for i := range list {
		r := &list[i]
		entry := ports.ItineraryEntry{
			Index:      i,
			FlightDate: r.FlightDateText(),
			Airline:    r.Airline,
			Tickets:    r.Tickets,
			Cabin:      r.CabinLabel(),
			Confirmed:  r.Confirmed,
		}

		fmt.Fprintf(&b, "\n%d. %s | %s | tickets: %d | cabin: %s",
			i+1, entry.FlightDate, entry.Airline, entry.Tickets, entry.Cabin)

		if r.Confirmed {
			entry.SeatNumber = r.Confirmation.SeatNumber
			entry.CabinClass = r.Confirmation.CabinClass
			fmt.Fprintf(&b, " | confirmed: seat %s (%s), bags: %d",
				r.Confirmation.SeatNumber, r.Confirmation.CabinClass, r.Confirmation.Bags)
		}

		entries = append(entries, entry)
	}

	return &ports.Itinerary{Username: username, Entries: entries, Text: b.String()}, nil
}
