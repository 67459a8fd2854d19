package ports

import (
	"time"

	"forwarding/internal/core/domain/model/identity"
)

// TokenCodec issues and verifies bearer tokens. Implementations keep no
// per-token state.
type TokenCodec interface {
	// Issue signs a token for principal valid from now for the configured TTL.
	Issue(principal *identity.Principal, now time.Time) (identity.Token, error)

	// Decode verifies the signature and then the expiry. It returns
	// identity.ErrInvalidSignature or identity.ErrTokenExpired.
	Decode(raw string) (identity.Claims, error)
}
