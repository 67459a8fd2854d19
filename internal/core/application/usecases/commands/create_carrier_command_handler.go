package commands

import (
	"context"
	"log/slog"

	"forwarding/internal/core/domain/model/carrier"
)

type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
	logger     *slog.Logger
}

func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory, logger *slog.Logger) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "CreateCarrierCommandHandler"),
	}
}

// Handle persists the carrier. A VAT number that is already registered yields
// errs.ObjectAlreadyExistsError.
func (h *CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := carrier.NewCarrier(cmd.CarrierID(), cmd.Details())
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

	if err = uow.CarrierRepository().Add(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "carrier registered",
		"carrier_id", c.ID().String(),
		"short_name", c.ShortName(),
	)
	return nil
}
