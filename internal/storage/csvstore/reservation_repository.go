package csvstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/voyagekit/flight-booking/internal/api/metrics"
	"github.com/voyagekit/flight-booking/internal/core/domain"
)

// ReservationRepository is the file-backed implementation of
// ports.ReservationRepository. Reservations keep insertion order for the
// life of the process and across reloads; a confirmation index is stable as
// long as the file is owned by one process, which this design assumes.
type ReservationRepository struct {
	path string
	log  zerolog.Logger

	mu           sync.RWMutex
	reservations []domain.Reservation
}

// NewReservationRepository loads the reservation file at path. A missing
// file fails with domain.ErrStoreNotFound; malformed rows are skipped.
func NewReservationRepository(path string, log zerolog.Logger) (*ReservationRepository, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	reservations := make([]domain.Reservation, 0, len(lines))
	for i, line := range lines {
		res, err := decodeReservation(line)
		if err != nil {
			metrics.StoreRowsSkipped.WithLabelValues("reservations").Inc()
			log.Warn().Err(err).Int("line", i+1).Str("file", path).Msg("skipping malformed reservation row")
			continue
		}
		reservations = append(reservations, res)
	}

	log.Info().Int("count", len(reservations)).Str("file", path).Msg("reservations loaded")
	return &ReservationRepository{path: path, log: log, reservations: reservations}, nil
}

func (r *ReservationRepository) Add(_ context.Context, res *domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reservations = append(r.reservations, *res)
	return r.saveLocked()
}

func (r *ReservationRepository) FindAllByUsername(_ context.Context, username string) ([]domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]domain.Reservation, 0)
	for i := range r.reservations {
		if r.reservations[i].Username == username {
			matches = append(matches, r.reservations[i])
		}
	}
	return matches, nil
}

func (r *ReservationRepository) UpdateConfirmation(_ context.Context, username string, index int, conf domain.Confirmation) (*domain.Reservation, error) {
	if index < 0 {
		return nil, domain.ErrReservationNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := 0
	for i := range r.reservations {
		if r.reservations[i].Username != username {
			continue
		}
		if seen == index {
			r.reservations[i].Confirmed = true
			r.reservations[i].Confirmation = conf
			if err := r.saveLocked(); err != nil {
				return nil, err
			}
			res := r.reservations[i]
			return &res, nil
		}
		seen++
	}
	return nil, domain.ErrReservationNotFound
}

// Count reports the number of loaded reservation records.
func (r *ReservationRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reservations)
}

func (r *ReservationRepository) saveLocked() error {
	start := time.Now()

	lines := make([]string, len(r.reservations))
	for i := range r.reservations {
		lines[i] = encodeReservation(&r.reservations[i])
	}

	if err := writeAtomic(r.path, lines); err != nil {
		r.log.Error().Err(err).Str("file", r.path).Msg("reservation save failed")
		return fmt.Errorf("save reservations: %w", err)
	}

	metrics.StoreSaveDuration.WithLabelValues("reservations").Observe(time.Since(start).Seconds())
	return nil
}
