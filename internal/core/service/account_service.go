package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/voyagekit/flight-booking/internal/api/metrics"
	"github.com/voyagekit/flight-booking/internal/core/domain"
	"github.com/voyagekit/flight-booking/internal/core/ports"
)

// AccountService implements registration, login and the session-scoped
// account mutations.
type AccountService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAccountService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AccountService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AccountService{users: users, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AccountService) Register(ctx context.Context, username, password, tier string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	t, err := domain.ParseTier(tier)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Username: username, Password: password, Tier: t}
	if err := s.users.Add(ctx, user); err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(string(t)).Inc()
	s.log.Info().Str("username", username).Str("tier", string(t)).Msg("user registered")
	return user, nil
}

func (s *AccountService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil || !user.Authenticate(password) {
		// Unknown user and wrong password are deliberately indistinguishable.
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	session := ports.Session{Username: user.Username, TokenID: newTokenID()}
	if err := s.sessions.Create(ctx, session, s.tokenTTL); err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	token, err := s.signToken(user, session.TokenID)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Msg("login succeeded")
	return token, user, nil
}

// Logout revokes the session. Revoking twice, or a session that never
// existed, is not an error.
func (s *AccountService) Logout(ctx context.Context, session ports.Session) error {
	if err := s.sessions.Revoke(ctx, session); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Str("username", session.Username).Msg("session revoked")
	return nil
}

func (s *AccountService) ChangePassword(ctx context.Context, session ports.Session, newPassword string) (*domain.User, error) {
	if newPassword == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.requireCurrentUser(ctx, session)
	if err != nil {
		return nil, err
	}

	user.Password = newPassword
	if err := s.users.UpdateInPlace(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("password changed")
	return user, nil
}

func (s *AccountService) ToggleTier(ctx context.Context, session ports.Session) (*domain.User, error) {
	user, err := s.requireCurrentUser(ctx, session)
	if err != nil {
		return nil, err
	}

	user.Tier = user.Tier.Toggle()
	if err := s.users.UpdateInPlace(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Str("tier", string(user.Tier)).Msg("tier toggled")
	return user, nil
}

func (s *AccountService) CurrentUser(ctx context.Context, session ports.Session) (*domain.User, error) {
	return s.requireCurrentUser(ctx, session)
}

// requireCurrentUser is the precondition shared by every session-scoped
// operation: the session must be present, still active in the store, and
// resolve to a live user record. The record is re-read on every call so
// mutations made through the repository are always observed.
func (s *AccountService) requireCurrentUser(ctx context.Context, session ports.Session) (*domain.User, error) {
	if session.Username == "" || session.TokenID == "" {
		return nil, domain.ErrUnauthenticated
	}

	active, err := s.sessions.IsActive(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("session check: %w", err)
	}
	if !active {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByUsername(ctx, session.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (s *AccountService) signToken(user *domain.User, tokenID string) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"tier":     string(user.Tier),
		"jti":      tokenID,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newTokenID returns a random 128-bit session identifier.
func newTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
