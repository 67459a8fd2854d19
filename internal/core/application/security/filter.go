package security

import (
	"strings"

	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/core/ports"
)

const bearerScheme = "bearer"

// RequestAuthorizationFilter establishes the security context of a request
// from its Authorization header.
type RequestAuthorizationFilter struct {
	codec ports.TokenCodec
}

func NewRequestAuthorizationFilter(codec ports.TokenCodec) RequestAuthorizationFilter {
	return RequestAuthorizationFilter{codec: codec}
}

// Resolve never fails: anything other than a valid bearer token yields an
// anonymous context and the access policy decides what that may reach.
func (f RequestAuthorizationFilter) Resolve(authorization string) identity.SecurityContext {
	sc, _ := f.ResolveWithCause(authorization)
	return sc
}

// ResolveWithCause is Resolve that also returns why a presented token was
// rejected. The error is nil for a missing header or a non-bearer scheme.
func (f RequestAuthorizationFilter) ResolveWithCause(authorization string) (identity.SecurityContext, error) {
	raw, ok := bearerToken(authorization)
	if !ok {
		return identity.Anonymous(), nil
	}

	claims, err := f.codec.Decode(raw)
	if err != nil {
		return identity.Anonymous(), err
	}
	return identity.Authenticated(claims), nil
}

// bearerToken extracts the credential of a "Bearer <token>" header. The
// scheme is case-insensitive.
func bearerToken(authorization string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
