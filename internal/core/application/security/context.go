// Package security turns a bearer credential into a per-request security
// context and decides whether that context may reach a route.
//
// Nothing here keeps state between requests. The filter and the policy are
// built once at startup and only read afterwards.
package security

import (
	"context"

	"forwarding/internal/core/domain/model/identity"
)

type contextKey struct{}

// WithContext returns a copy of ctx carrying sc.
func WithContext(ctx context.Context, sc identity.SecurityContext) context.Context {
	return context.WithValue(ctx, contextKey{}, sc)
}

// FromContext returns the security context attached by WithContext, or an
// anonymous one and false.
func FromContext(ctx context.Context) (identity.SecurityContext, bool) {
	sc, ok := ctx.Value(contextKey{}).(identity.SecurityContext)
	if !ok {
		return identity.Anonymous(), false
	}
	return sc, true
}
