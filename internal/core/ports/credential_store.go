package ports

import (
	"context"

	"forwarding/internal/core/domain/model/identity"
)

// CredentialStore looks up employee accounts. Implementations must honour
// ctx cancellation and report driver failures as errs.InfrastructureError so
// that they are never mistaken for bad credentials.
type CredentialStore interface {
	// FindByUsername returns identity.ErrUnknownUser when no account matches.
	FindByUsername(ctx context.Context, username string) (*identity.Principal, error)

	// Add stores a new account. A taken username yields
	// errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, principal *identity.Principal) error
}
