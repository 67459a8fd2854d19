package commands

import (
	"context"
	"log/slog"

	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/core/ports"
)

// CreatePrincipalCommandHandler provisions accounts. It backs the admin
// account endpoint and the bootstrap admin created at startup.
type CreatePrincipalCommandHandler struct {
	uowFactory PrincipalUoWFactory
	hasher     ports.PasswordHasher
	logger     *slog.Logger
}

func NewCreatePrincipalCommandHandler(
	uowFactory PrincipalUoWFactory,
	hasher ports.PasswordHasher,
	logger *slog.Logger,
) CreatePrincipalCommandHandler {
	return CreatePrincipalCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		logger:     logger.With("component", "CreatePrincipalCommandHandler"),
	}
}

// Handle hashes the password and stores the principal. A taken username
// yields errs.ObjectAlreadyExistsError.
func (h *CreatePrincipalCommandHandler) Handle(ctx context.Context, cmd CreatePrincipalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	principal, err := identity.NewPrincipal(cmd.Username(), hash, cmd.Roles())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CredentialStore().Add(ctx, principal); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "principal created",
		"username", principal.Username(),
		"roles", principal.Roles().Strings(),
	)
	return nil
}
