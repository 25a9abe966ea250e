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

// UserRepository is the file-backed implementation of ports.UserRepository.
// The slice it guards is the authoritative collection for the life of the
// process; the file is a serialized snapshot rewritten in full after every
// mutation. The mutex exists because the HTTP layer calls in concurrently;
// the whole-collection rewrite discipline itself is unchanged by it.
type UserRepository struct {
	path string
	log  zerolog.Logger

	mu    sync.RWMutex
	users []domain.User
}

// NewUserRepository loads the user file at path. A missing file fails with
// domain.ErrStoreNotFound. Malformed rows are skipped with a warning, not
// fatal to the load.
func NewUserRepository(path string, log zerolog.Logger) (*UserRepository, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	users := make([]domain.User, 0, len(lines))
	for i, line := range lines {
		u, err := decodeUser(line)
		if err != nil {
			metrics.StoreRowsSkipped.WithLabelValues("users").Inc()
			log.Warn().Err(err).Int("line", i+1).Str("file", path).Msg("skipping malformed user row")
			continue
		}
		users = append(users, u)
	}

	log.Info().Int("count", len(users)).Str("file", path).Msg("users loaded")
	return &UserRepository{path: path, log: log, users: users}, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Exists(_ context.Context, username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Username == username {
			return true
		}
	}
	return false
}

func (r *UserRepository) Add(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == user.Username {
			return domain.ErrUserExists
		}
	}

	r.users = append(r.users, *user)
	return r.saveLocked()
}

func (r *UserRepository) UpdateInPlace(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == user.Username {
			r.users[i] = *user
			return r.saveLocked()
		}
	}
	return domain.ErrUserNotFound
}

// Count reports the number of loaded user records.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// saveLocked rewrites the whole collection to disk. Callers hold the write
// lock. On failure the in-memory collection is already updated and the file
// may be stale; the save is what needs retrying, not the operation.
func (r *UserRepository) saveLocked() error {
	start := time.Now()

	lines := make([]string, len(r.users))
	for i := range r.users {
		lines[i] = encodeUser(&r.users[i])
	}

	if err := writeAtomic(r.path, lines); err != nil {
		r.log.Error().Err(err).Str("file", r.path).Msg("user save failed")
		return fmt.Errorf("save users: %w", err)
	}

	metrics.StoreSaveDuration.WithLabelValues("users").Observe(time.Since(start).Seconds())
	return nil
}
