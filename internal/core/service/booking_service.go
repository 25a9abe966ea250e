package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/voyagekit/flight-booking/internal/api/metrics"
	"github.com/voyagekit/flight-booking/internal/core/domain"
	"github.com/voyagekit/flight-booking/internal/core/ports"
)

// BookingService implements reservation creation, confirmation and the
// itinerary query. It holds no state of its own beyond the repositories.
type BookingService struct {
	users        ports.UserRepository
	reservations ports.ReservationRepository
	log          zerolog.Logger
}

func NewBookingService(users ports.UserRepository, reservations ports.ReservationRepository, log zerolog.Logger) *BookingService {
	return &BookingService{users: users, reservations: reservations, log: log}
}

// Book creates a reservation. The username must belong to a registered
// user, but no session is required: anyone may book on behalf of any
// existing account.
func (s *BookingService) Book(ctx context.Context, input ports.BookInput) (*domain.Reservation, error) {
	if input.Tickets <= 0 {
		return nil, domain.ErrInvalidTicketCount
	}

	date, err := domain.ParseFlightDate(input.FlightDate)
	if err != nil {
		return nil, err
	}

	if !s.users.Exists(ctx, input.Username) {
		return nil, domain.ErrUserNotFound
	}

	res := &domain.Reservation{
		Username:     input.Username,
		FlightDate:   date,
		PremiumCabin: input.PremiumCabin,
		Tickets:      input.Tickets,
		Airline:      input.Airline,
	}

	if err := s.reservations.Add(ctx, res); err != nil {
		s.log.Error().Err(err).Str("username", input.Username).Msg("failed to book reservation")
		return nil, err
	}

	metrics.ReservationsCreatedTotal.WithLabelValues(res.CabinLabel()).Inc()
	s.log.Info().
		Str("username", res.Username).
		Str("airline", res.Airline).
		Int("tickets", res.Tickets).
		Str("cabin", res.CabinLabel()).
		Msg("reservation booked")

	return res, nil
}

// Confirm attaches payment, seat and baggage details to the reservation at
// the given index among the user's reservations. The card fields are
// recorded as given; no payment processing happens here.
func (s *BookingService) Confirm(ctx context.Context, input ports.ConfirmInput) (*domain.Reservation, error) {
	conf := domain.Confirmation{
		CardNumber:   input.CardNumber,
		Installments: input.Installments,
		CabinClass:   input.CabinClass,
		SeatNumber:   input.SeatNumber,
		Bags:         input.Bags,
	}

	res, err := s.reservations.UpdateConfirmation(ctx, input.Username, input.Index, conf)
	if err != nil {
		return nil, err
	}

	metrics.ConfirmationsTotal.Inc()
	s.log.Info().
		Str("username", res.Username).
		Int("index", input.Index).
		Str("seat", conf.SeatNumber).
		Msg("reservation confirmed")

	return res, nil
}
