package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/voyagekit/flight-booking/internal/core/domain"
	"github.com/voyagekit/flight-booking/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users []domain.User
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Exists(_ context.Context, username string) bool {
	for i := range r.users {
		if r.users[i].Username == username {
			return true
		}
	}
	return false
}

func (r *stubUserRepo) Add(_ context.Context, user *domain.User) error {
	for i := range r.users {
		if r.users[i].Username == user.Username {
			return domain.ErrUserExists
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *stubUserRepo) UpdateInPlace(_ context.Context, user *domain.User) error {
	for i := range r.users {
		if r.users[i].Username == user.Username {
			r.users[i] = *user
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubSessionStore struct {
	active map[ports.Session]bool
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{active: make(map[ports.Session]bool)}
}

func (s *stubSessionStore) Create(_ context.Context, session ports.Session, _ time.Duration) error {
	s.active[session] = true
	return nil
}

func (s *stubSessionStore) IsActive(_ context.Context, session ports.Session) (bool, error) {
	return s.active[session], nil
}

func (s *stubSessionStore) Revoke(_ context.Context, session ports.Session) error {
	delete(s.active, session)
	return nil
}

func newAccountService() (*AccountService, *stubUserRepo, *stubSessionStore) {
	repo := &stubUserRepo{}
	sessions := newStubSessionStore()
	return NewAccountService(repo, sessions, "secret", time.Hour, discardLogger), repo, sessions
}

// loginSession registers and logs in, returning the session the middleware
// would reconstruct from the issued token.
func loginSession(t *testing.T, svc *AccountService, username, password, tier string) ports.Session {
	t.Helper()
	if _, err := svc.Register(context.Background(), username, password, tier); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), username, password)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return sessionFromToken(t, token)
}

func sessionFromToken(t *testing.T, token string) ports.Session {
	t.Helper()
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	username, _ := claims["username"].(string)
	tokenID, _ := claims["jti"].(string)
	return ports.Session{Username: username, TokenID: tokenID}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAccountService_Register_Success(t *testing.T) {
	svc, repo, _ := newAccountService()

	user, err := svc.Register(context.Background(), "alice", "pw1", "Premium")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Tier != domain.TierPremium {
		t.Errorf("tier must be normalized: got %q", user.Tier)
	}
	if len(repo.users) != 1 || repo.users[0].Username != "alice" {
		t.Fatalf("user not stored: %+v", repo.users)
	}
}

func TestAccountService_Register_Validation(t *testing.T) {
	svc, repo, _ := newAccountService()

	if _, err := svc.Register(context.Background(), "bob", "pw", "gold"); !errors.Is(err, domain.ErrInvalidTier) {
		t.Errorf("expected ErrInvalidTier, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "", "pw", "base"); !errors.Is(err, domain.ErrMissingFields) {
		t.Errorf("expected ErrMissingFields for empty username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", "base"); !errors.Is(err, domain.ErrMissingFields) {
		t.Errorf("expected ErrMissingFields for empty password, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Errorf("rejected registrations must not store anything: %+v", repo.users)
	}
}

func TestAccountService_Register_DuplicatePreservesOriginal(t *testing.T) {
	svc, repo, _ := newAccountService()

	if _, err := svc.Register(context.Background(), "alice", "pw1", "premium"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "pw2", "base"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	if len(repo.users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(repo.users))
	}
	if repo.users[0].Password != "pw1" || repo.users[0].Tier != domain.TierPremium {
		t.Errorf("original record mutated: %+v", repo.users[0])
	}
}

// ---------------------------------------------------------------------------
// Login / Logout
// ---------------------------------------------------------------------------

func TestAccountService_Login_Success(t *testing.T) {
	svc, _, sessions := newAccountService()

	if _, err := svc.Register(context.Background(), "carol", "s3cret", "base"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	session := sessionFromToken(t, token)
	if session.Username != "carol" || session.TokenID == "" {
		t.Fatalf("unexpected claims: %+v", session)
	}
	if active, _ := sessions.IsActive(context.Background(), session); !active {
		t.Error("login must register the session")
	}
}

func TestAccountService_Login_FailureIsUndifferentiated(t *testing.T) {
	svc, _, sessions := newAccountService()
	_, _ = svc.Register(context.Background(), "dave", "goodpass", "base")

	_, _, wrongPw := svc.Login(context.Background(), "dave", "badpass")
	_, _, unknown := svc.Login(context.Background(), "ghost", "whatever")

	if !errors.Is(wrongPw, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPw)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", unknown)
	}
	if len(sessions.active) != 0 {
		t.Error("failed login must not bind a session")
	}
}

func TestAccountService_LogoutRevokesSession(t *testing.T) {
	svc, _, _ := newAccountService()
	session := loginSession(t, svc, "alice", "pw1", "base")

	if _, err := svc.CurrentUser(context.Background(), session); err != nil {
		t.Fatalf("session should be live before logout: %v", err)
	}

	if err := svc.Logout(context.Background(), session); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.CurrentUser(context.Background(), session); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated after logout, got %v", err)
	}

	// Logout is idempotent.
	if err := svc.Logout(context.Background(), session); err != nil {
		t.Errorf("second logout must not fail: %v", err)
	}
}

func TestAccountService_CurrentUser_NoSession(t *testing.T) {
	svc, _, _ := newAccountService()

	if _, err := svc.CurrentUser(context.Background(), ports.Session{}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAccountService_CurrentUser_ObservesRepositoryMutations(t *testing.T) {
	svc, repo, _ := newAccountService()
	session := loginSession(t, svc, "alice", "pw1", "base")

	// Mutate the backing record out of band; the session must not hold a
	// stale clone.
	repo.users[0].Tier = domain.TierPremium

	user, err := svc.CurrentUser(context.Background(), session)
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if user.Tier != domain.TierPremium {
		t.Errorf("session returned a stale record: %+v", user)
	}
}

// ---------------------------------------------------------------------------
// ChangePassword / ToggleTier
// ---------------------------------------------------------------------------

func TestAccountService_ChangePassword(t *testing.T) {
	svc, _, _ := newAccountService()
	session := loginSession(t, svc, "alice", "old-pw", "base")

	if _, err := svc.ChangePassword(context.Background(), session, "new-pw"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice", "new-pw"); err != nil {
		t.Errorf("login with new password must succeed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice", "old-pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("login with old password must fail, got %v", err)
	}
}

func TestAccountService_ChangePassword_RequiresSession(t *testing.T) {
	svc, _, _ := newAccountService()

	if _, err := svc.ChangePassword(context.Background(), ports.Session{}, "pw"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAccountService_ToggleTier(t *testing.T) {
	svc, repo, _ := newAccountService()
	session := loginSession(t, svc, "alice", "pw1", "base")

	user, err := svc.ToggleTier(context.Background(), session)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if user.Tier != domain.TierPremium {
		t.Errorf("base must toggle to premium, got %q", user.Tier)
	}
	if repo.users[0].Tier != domain.TierPremium {
		t.Errorf("toggle not persisted: %+v", repo.users[0])
	}

	user, err = svc.ToggleTier(context.Background(), session)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if user.Tier != domain.TierBase {
		t.Errorf("premium must toggle back to base, got %q", user.Tier)
	}
}
