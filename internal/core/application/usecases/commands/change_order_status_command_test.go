package commands_test

import (
	"testing"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callerWith(subject string, roles ...identity.Role) identity.SecurityContext {
	return identity.Authenticated(identity.Claims{
		Subject:   subject,
		Roles:     identity.MustRoles(roles...),
		IssuedAt:  fixedNow,
		ExpiresAt: fixedNow.Add(time.Hour),
	})
}

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	caller := callerWith("forwarder", identity.Forwarder)

	cmd, err := commands.NewChangeOrderStatusCommand(id, order.OnLoading, caller)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.OnLoading, cmd.Status())
	assert.Equal(t, "forwarder", cmd.Caller().Subject())
}

func TestNewChangeOrderStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, order.Unknown, identity.Anonymous())

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorContains(t, err, "status")
	require.ErrorIs(t, err, identity.ErrUnauthorized)
}

func TestChangeOrderStatusCommand_ZeroValueIsInvalid(t *testing.T) {
	require.ErrorIs(t,
		commands.ChangeOrderStatusCommand{}.Validate(),
		commands.ErrChangeOrderStatusCommandIsNotConstructed,
	)
}
