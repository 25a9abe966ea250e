package domain

import "strings"

// Tier is the account class of a user.
type Tier string

const (
	TierBase    Tier = "base"
	TierPremium Tier = "premium"
)

// ParseTier normalizes a tier string. Input is case-insensitive; the
// canonical form is lowercase.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TierBase):
		return TierBase, nil
	case string(TierPremium):
		return TierPremium, nil
	default:
		return "", ErrInvalidTier
	}
}

// Toggle flips base to premium and premium to base.
func (t Tier) Toggle() Tier {
	if t == TierPremium {
		return TierBase
	}
	return TierPremium
}

// User models an account in the booking system. The username is the unique
// key; two users never share one.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Tier     Tier   `json:"tier"`
}

// Authenticate reports whether the given password matches. Passwords are
// stored and compared as plain strings; every comparison goes through this
// single method so a hashing scheme can be substituted here without touching
// repository or service logic.
func (u *User) Authenticate(password string) bool {
	return u.Password == password
}
