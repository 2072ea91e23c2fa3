package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime of every access token issued on
// signup or login.
const DefaultAccessTokenTTL = 30 * time.Minute

// Claims are the access-token claims: sub, iat and exp only.
type Claims struct {
	jwt.RegisteredClaims
}

// NewAccessClaims builds claims for subject issued at now.
func NewAccessClaims(subject string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// ValidateExpiry reports ErrExpired once now is past exp. A token is still
// valid at exactly exp.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	if now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}
