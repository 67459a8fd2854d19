package commands

import (
	"context"
	"errors"
	"log/slog"

	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/core/ports"
)

// LoginCommandHandler is the authentication gate: it checks credentials and
// issues a bearer token. It writes nothing; a token is the whole session.
type LoginCommandHandler struct {
	store    ports.CredentialStore
	verifier ports.PasswordVerifier
	codec    ports.TokenCodec
	clock    Clock
	logger   *slog.Logger
}

func NewLoginCommandHandler(
	store ports.CredentialStore,
	verifier ports.PasswordVerifier,
	codec ports.TokenCodec,
	clock Clock,
	logger *slog.Logger,
) LoginCommandHandler {
	return LoginCommandHandler{
		store:    store,
		verifier: verifier,
		codec:    codec,
		clock:    clock,
		logger:   logger.With("component", "LoginCommandHandler"),
	}
}

// Handle returns identity.ErrUnknownUser or identity.ErrBadCredentials on a
// failed attempt. Both wrap identity.ErrAuthenticationFailed, which is all a
// caller outside the core should look at. Store failures are returned as is.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (identity.Token, error) {
	if err := cmd.Validate(); err != nil {
		return identity.Token{}, err
	}

	principal, err := h.store.FindByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, identity.ErrAuthenticationFailed) {
			// same bcrypt work as a wrong password, so latency does not reveal the username
			_ = h.verifier.Verify(cmd.Password(), h.verifier.DecoyHash())
			h.logger.WarnContext(ctx, "login rejected", "username", cmd.Username(), "reason", "unknown user")
		}
		return identity.Token{}, err
	}

	if err = h.verifier.Verify(cmd.Password(), principal.PasswordHash()); err != nil {
		if errors.Is(err, identity.ErrAuthenticationFailed) {
			h.logger.WarnContext(ctx, "login rejected", "username", cmd.Username(), "reason", "bad credentials")
		}
		return identity.Token{}, err
	}

	token, err := h.codec.Issue(principal, h.clock())
	if err != nil {
		return identity.Token{}, err
	}

	h.logger.InfoContext(ctx, "login succeeded",
		"username", principal.Username(),
		"roles", principal.Roles().Strings(),
		"expires_at", token.ExpiresAt,
	)
	return token, nil
}
