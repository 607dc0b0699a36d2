package domain

import "time"

// Provider identifies an external identity source.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderApple  Provider = "apple"
)

// User is the canonical account record every login path resolves to.
// PasswordHash is empty for users provisioned through an external
// provider; GoogleID/AppleID are empty until that provider is linked.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	GoogleID     string
	AppleID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProviderID returns the external id linked for the given provider,
// or "" when none is linked.
func (u *User) ProviderID(p Provider) string {
	switch p {
	case ProviderGoogle:
		return u.GoogleID
	case ProviderApple:
		return u.AppleID
	}
	return ""
}

// RefreshSession is one issued refresh token, stored verbatim so logout
// can revoke by exact match. A user may hold many live sessions.
type RefreshSession struct {
	ID        string
	UserID    int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
