package domain

import "time"

// FlightDateLayout is the textual flight date format used on the wire and in
// the data files: dd/mm/yyyy HH:MM.
const FlightDateLayout = "02/01/2006 15:04"

// ParseFlightDate parses a flight date in FlightDateLayout.
func ParseFlightDate(s string) (time.Time, error) {
	t, err := time.Parse(FlightDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidFlightDate
	}
	return t, nil
}

// Confirmation holds the payment, seating and baggage details attached to a
// reservation once it has been confirmed. The card fields are recorded as
// given; payment processing is outside this system.
type Confirmation struct {
	CardNumber   string `json:"card_number"`
	Installments int    `json:"installments"`
	CabinClass   string `json:"cabin_class"`
	SeatNumber   string `json:"seat_number"`
	Bags         int    `json:"bags"`
}

// Reservation is a booking held by a user. A zero FlightDate marks a stored
// row whose date could not be parsed; the record is kept regardless.
type Reservation struct {
	Username     string       `json:"username"`
	FlightDate   time.Time    `json:"flight_date"`
	PremiumCabin bool         `json:"premium_cabin"`
	Tickets      int          `json:"tickets"`
	Airline      string       `json:"airline"`
	Confirmed    bool         `json:"confirmed"`
	Confirmation Confirmation `json:"confirmation,omitzero"`
}

// CabinLabel renders the booking-time class of service for display.
func (r *Reservation) CabinLabel() string {
	if r.PremiumCabin {
		return "premium"
	}
	return "normal"
}

// FlightDateText renders the flight date in the wire layout, or "unknown"
// for a zero date.
func (r *Reservation) FlightDateText() string {
	if r.FlightDate.IsZero() {
		return "unknown"
	}
	return r.FlightDate.Format(FlightDateLayout)
}
