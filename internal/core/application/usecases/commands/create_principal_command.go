package commands

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrCreatePrincipalCommandIsNotConstructed = errors.New(
		"CreatePrincipalCommand must be created via NewCreatePrincipalCommand constructor",
	)
	ErrRolesAreRequired = errs.NewValueIsRequiredError("roles")
)

// CreatePrincipalCommand provisions an account. The password is hashed by the
// handler and never stored in clear text.
type CreatePrincipalCommand struct { //nolint:recvcheck //using for validation
	username string
	password string
	roles    identity.Roles

	guard guard.ConstructorGuard
}

func NewCreatePrincipalCommand(username, password string, roles identity.Roles) (CreatePrincipalCommand, error) {
	cmd := CreatePrincipalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
		cmd.setRoles(roles),
	); err != nil {
		return CreatePrincipalCommand{}, err
	}

	return cmd, nil
}

func (c CreatePrincipalCommand) Validate() error {
	return c.guard.Validate(ErrCreatePrincipalCommandIsNotConstructed)
}

func (c CreatePrincipalCommand) Username() string {
	return c.username
}

func (c CreatePrincipalCommand) Password() string {
	return c.password
}

func (c CreatePrincipalCommand) Roles() identity.Roles {
	return c.roles
}

func (c *CreatePrincipalCommand) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameIsRequired
	}
	c.username = username
	return nil
}

func (c *CreatePrincipalCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}

func (c *CreatePrincipalCommand) setRoles(roles identity.Roles) error {
	if roles.IsEmpty() {
		return ErrRolesAreRequired
	}
	c.roles = roles
	return nil
}
