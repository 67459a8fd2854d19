package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrCreateCarrierCommandIsNotConstructed = errors.New(
	"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
)

// CreateCarrierCommand registers an external carrier. Field rules are those of
// carrier.NewCarrier; the command only checks the identifier.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	details   carrier.Details

	guard guard.ConstructorGuard
}

func NewCreateCarrierCommand(carrierID kernel.UUID, details carrier.Details) (CreateCarrierCommand, error) {
	if err := carrierID.Validate(); err != nil {
		return CreateCarrierCommand{}, err
	}

	return CreateCarrierCommand{
		carrierID: carrierID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c CreateCarrierCommand) Details() carrier.Details {
	return c.details
}
