// Package jwtcodec issues and verifies HS256 bearer tokens with
// github.com/golang-jwt/jwt/v5. The codec holds only the signing key, the
// token lifetime and a clock, all fixed at construction.
package jwtcodec

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"forwarding/internal/core/domain/model/identity"

	"github.com/golang-jwt/jwt/v5"
)

// MinKeyLength is the shortest accepted HMAC key, matching the SHA-256 block
// output size.
const MinKeyLength = 32

const DefaultTTL = 24 * time.Hour

var (
	ErrSigningKeyIsRequired = errors.New("token signing key is required")
	ErrSigningKeyTooShort   = fmt.Errorf("token signing key must be at least %d bytes", MinKeyLength)
	ErrTTLIsInvalid         = errors.New("token ttl must be positive")
)

// tokenClaims is the signed payload.
type tokenClaims struct {
	jwt.RegisteredClaims

	Roles []string `json:"roles"`
}

// Codec implements ports.TokenCodec. It is safe for concurrent use.
type Codec struct {
	key    []byte
	ttl    time.Duration
	issuer string
	clock  func() time.Time
	parser *jwt.Parser
}

type Option func(*Codec)

// WithIssuer sets the iss claim and requires it on decode.
func WithIssuer(issuer string) Option {
	return func(c *Codec) {
		c.issuer = issuer
	}
}

// WithClock replaces time.Now for expiry checks.
func WithClock(clock func() time.Time) Option {
	return func(c *Codec) {
		c.clock = clock
	}
}

// NewCodec fails when the key is missing or too short, so that a
// misconfigured process never starts serving.
func NewCodec(key []byte, ttl time.Duration, opts ...Option) (*Codec, error) {
	if len(key) == 0 {
		return nil, ErrSigningKeyIsRequired
	}
	if len(key) < MinKeyLength {
		return nil, ErrSigningKeyTooShort
	}
	if ttl <= 0 {
		return nil, ErrTTLIsInvalid
	}

	c := &Codec{
		key:   append([]byte(nil), key...),
		ttl:   ttl,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Claims are checked by Decode itself: expiry is inclusive of the exp
	// second, which the library's validator treats as already expired.
	c.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithoutClaimsValidation(),
	)
	return c, nil
}

func (c *Codec) TTL() time.Duration {
	return c.ttl
}

func (c *Codec) Issue(principal *identity.Principal, now time.Time) (identity.Token, error) {
	if err := principal.Validate(); err != nil {
		return identity.Token{}, err
	}

	issuedAt := jwt.NewNumericDate(now)
	expiresAt := jwt.NewNumericDate(now.Add(c.ttl))
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   principal.Username(),
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		},
		Roles: principal.Roles().Strings(),
	}

	value, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return identity.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return identity.Token{
		Value:     value,
		Subject:   principal.Username(),
		Roles:     principal.Roles(),
		IssuedAt:  issuedAt.Time,
		ExpiresAt: expiresAt.Time,
	}, nil
}

// Decode verifies the signature before looking at any claim. Every failure
// other than expiry, including garbage input, is reported as
// identity.ErrInvalidSignature.
func (c *Codec) Decode(raw string) (identity.Claims, error) {
	var claims tokenClaims
	_, err := c.parser.ParseWithClaims(strings.TrimSpace(raw), &claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	})
	if err != nil {
		return identity.Claims{}, invalid(err)
	}

	if claims.Subject == "" || claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return identity.Claims{}, invalid(errors.New("missing registered claims"))
	}
	if c.issuer != "" && claims.Issuer != c.issuer {
		return identity.Claims{}, invalid(fmt.Errorf("unexpected issuer %q", claims.Issuer))
	}
	roles, err := identity.RolesFromStrings(claims.Roles)
	if err != nil {
		return identity.Claims{}, invalid(err)
	}

	if c.clock().After(claims.ExpiresAt.Time) {
		return identity.Claims{}, identity.ErrTokenExpired
	}

	return identity.Claims{
		Subject:   claims.Subject,
		Roles:     roles,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func invalid(cause error) error {
	return fmt.Errorf("%w (%v)", identity.ErrInvalidSignature, cause)
}
