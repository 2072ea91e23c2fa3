package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("jwtx: signing secret is not configured")
	ErrMalformed     = errors.New("jwtx: malformed token")
	ErrInvalidSig    = errors.New("jwtx: invalid signature")
	ErrExpired       = errors.New("jwtx: token expired")
	ErrInvalidClaim  = errors.New("jwtx: invalid claims")
)

// HS256Signer issues HMAC-SHA256 access tokens.
type HS256Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHS256Signer returns a signer for secret. A ttl of zero means
// DefaultAccessTokenTTL; now may be nil to use time.Now.
func NewHS256Signer(secret string, ttl time.Duration, now func() time.Time) (*HS256Signer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	if now == nil {
		now = time.Now
	}
	return &HS256Signer{secret: []byte(secret), ttl: ttl, now: now}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// TTL is the lifetime given to issued tokens.
func (s *HS256Signer) TTL() time.Duration { return s.ttl }

// Validate reports whether the signer can issue tokens.
func (s *HS256Signer) Validate() error {
	if s == nil || len(s.secret) == 0 {
		return ErrMissingSecret
	}
	return nil
}

// Issue signs a fresh token for subject with iat=now and exp=now+ttl.
func (s *HS256Signer) Issue(subject string) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	claims := NewAccessClaims(subject, s.ttl, s.now().UTC())
	return s.Sign(claims)
}

// Sign signs arbitrary claims.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return token, nil
}

// HS256Verifier checks tokens produced by an HS256Signer with the same
// secret. Expiry is checked against its own clock with no leeway.
type HS256Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewHS256Verifier(secret string, now func() time.Time) (*HS256Verifier, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if now == nil {
		now = time.Now
	}
	return &HS256Verifier{secret: []byte(secret), now: now}, nil
}

// Verify parses token, checks the algorithm and signature, then expiry.
func (v *HS256Verifier) Verify(token string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// Expiry is checked below against the injected clock.
		jwt.WithoutClaimsValidation(),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrTokenUnverifiable):
		return Claims{}, ErrMalformed
	default:
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if claims.Subject == "" || claims.IssuedAt == nil {
		return Claims{}, ErrInvalidClaim
	}
	if err := claims.ValidateExpiry(v.now()); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
