package commands

import (
	"errors"
	"time"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrCheckCarrierDocumentsCommandIsNotConstructed = errors.New(
		"CheckCarrierDocumentsCommand must be created via NewCheckCarrierDocumentsCommand constructor",
	)

	ErrWindowIsInvalid = errs.NewValueIsInvalidError("window")
)

// CheckCarrierDocumentsCommand looks for carriers whose insurance or licence
// runs out within window from now.
type CheckCarrierDocumentsCommand struct { //nolint:recvcheck //using for validation
	window time.Duration

	guard guard.ConstructorGuard
}

func NewCheckCarrierDocumentsCommand(window time.Duration) (CheckCarrierDocumentsCommand, error) {
	if window <= 0 {
		return CheckCarrierDocumentsCommand{}, ErrWindowIsInvalid
	}

	return CheckCarrierDocumentsCommand{
		window: window,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CheckCarrierDocumentsCommand) Validate() error {
	return c.guard.Validate(ErrCheckCarrierDocumentsCommandIsNotConstructed)
}

func (c CheckCarrierDocumentsCommand) Window() time.Duration {
	return c.window
}
