package domain

import "time"

const (
	MinCredentialTTL = 3300 * time.Second
	MaxCredentialTTL = 3600 * time.Second
)

// Credential is a bearer token issued by the web-app handshake. It is
// replaced wholesale on refresh and never mutated.
type Credential struct {
	Token    string
	IssuedAt time.Time
	TTL      time.Duration
}

func NewCredential(token string, issuedAt time.Time, ttl time.Duration) Credential {
	return Credential{Token: token, IssuedAt: issuedAt, TTL: ttl}
}

// IsStale reports whether the credential must be refreshed before the next
// backend call. A zero credential is always stale.
func (c Credential) IsStale(now time.Time) bool {
	if c.Token == "" || c.IssuedAt.IsZero() {
		return true
	}

	return now.Sub(c.IssuedAt) >= c.TTL
}

func (c Credential) ExpiresAt() time.Time {
	return c.IssuedAt.Add(c.TTL)
}
