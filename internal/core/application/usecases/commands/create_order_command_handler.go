package commands

import (
	"context"
	"log/slog"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/services"
)

// CreateOrderCommandHandler plans a new order. When a carrier is named it is
// loaded in the same transaction and its documents must be valid today.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	planner    services.OrderPlanner
	clock      Clock
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	planner services.OrderPlanner,
	clock Clock,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		clock:      clock,
		logger:     logger.With("component", "CreateOrderCommandHandler"),
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var assigned *carrier.Carrier
	if cmd.CarrierID() != nil {
		c, err := uow.CarrierRepository().Get(ctx, *cmd.CarrierID())
		if err != nil {
			return err
		}
		assigned = c
	}

	o, err := h.planner.Plan(cmd.OrderID(), assigned, cmd.Goods(), h.clock())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", o.ID().String(),
		"status", o.Status().String(),
	)
	return nil
}
