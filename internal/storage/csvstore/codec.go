package csvstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voyagekit/flight-booking/internal/core/domain"
)

// One record per line, fields joined with a comma, no quoting or escaping.
// A stored field containing a comma corrupts its row; this is a documented
// limitation of the wire format, not a bug to paper over here.
const delimiter = ","

// Canonical column orders. Users: username,password,tier. Reservations:
// username,flightDate,ticketTier,ticketCount,airline with five optional
// trailing confirmation columns (card,installments,cabinClass,seat,bags);
// their absence means the reservation is not yet confirmed.
const (
	userColumns            = 3
	reservationColumns     = 5
	reservationFullColumns = 10
)

func encodeUser(u *domain.User) string {
	return strings.Join([]string{u.Username, u.Password, string(u.Tier)}, delimiter)
}

func decodeUser(line string) (domain.User, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) < userColumns {
		return domain.User{}, fmt.Errorf("want %d columns, got %d", userColumns, len(fields))
	}

	tier, err := domain.ParseTier(fields[2])
	if err != nil {
		return domain.User{}, fmt.Errorf("tier %q: %w", fields[2], err)
	}

	return domain.User{
		Username: fields[0],
		Password: fields[1],
		Tier:     tier,
	}, nil
}

func encodeReservation(r *domain.Reservation) string {
	fields := []string{
		r.Username,
		r.FlightDate.Format(domain.FlightDateLayout),
		strconv.FormatBool(r.PremiumCabin),
		strconv.Itoa(r.Tickets),
		r.Airline,
	}
	if r.Confirmed {
		fields = append(fields,
			r.Confirmation.CardNumber,
			strconv.Itoa(r.Confirmation.Installments),
			r.Confirmation.CabinClass,
			r.Confirmation.SeatNumber,
			strconv.Itoa(r.Confirmation.Bags),
		)
	}
	return strings.Join(fields, delimiter)
}

func decodeReservation(line string) (domain.Reservation, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) < reservationColumns {
		return domain.Reservation{}, fmt.Errorf("want %d columns, got %d", reservationColumns, len(fields))
	}

	premium, err := strconv.ParseBool(fields[2])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("ticket tier %q: %w", fields[2], err)
	}
	tickets, err := strconv.Atoi(fields[3])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("ticket count %q: %w", fields[3], err)
	}

	r := domain.Reservation{
		Username:     fields[0],
		PremiumCabin: premium,
		Tickets:      tickets,
		Airline:      fields[4],
	}

	// An unparseable date on a stored row is tolerated: the record loads
	// with a zero date rather than being discarded.
	if date, err := domain.ParseFlightDate(fields[1]); err == nil {
		r.FlightDate = date
	}

	if len(fields) >= reservationFullColumns {
		installments, err := strconv.Atoi(fields[6])
		if err != nil {
			return domain.Reservation{}, fmt.Errorf("installments %q: %w", fields[6], err)
		}
		bags, err := strconv.Atoi(fields[9])
		if err != nil {
			return domain.Reservation{}, fmt.Errorf("bag count %q: %w", fields[9], err)
		}
		r.Confirmed = true
		r.Confirmation = domain.Confirmation{
			CardNumber:   fields[5],
			Installments: installments,
			CabinClass:   fields[7],
			SeatNumber:   fields[8],
			Bags:         bags,
		}
	}

	return r, nil
}
