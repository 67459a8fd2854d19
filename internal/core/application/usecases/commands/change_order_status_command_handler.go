package commands

import (
	"context"
	"log/slog"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
)

// ChangeOrderStatusResult is the outcome of a status change request.
// Changed is false when the order already had the requested status.
type ChangeOrderStatusResult struct {
	OrderID kernel.UUID
	Status  order.Status
	Changed bool
}

// ChangeOrderStatusCommandHandler applies the order workflow under a row lock
// so that concurrent requests for one order are serialized. The status change
// event is published after commit; a publishing failure is logged and does
// not fail the request.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	workflow   services.OrderWorkflow
	publisher  ports.OrderEventPublisher
	clock      Clock
	logger     *slog.Logger
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	workflow services.OrderWorkflow,
	publisher ports.OrderEventPublisher,
	clock Clock,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		workflow:   workflow,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "ChangeOrderStatusCommandHandler"),
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	previous := o.Status()
	current, err := h.workflow.Transition(o, cmd.Status(), cmd.Caller().Roles())
	if err != nil {
		h.logger.WarnContext(ctx, "status change rejected",
			"order_id", o.ID().String(),
			"from", previous.String(),
			"to", cmd.Status().String(),
			"caller", cmd.Caller().Subject(),
			"error", err,
		)
		return ChangeOrderStatusResult{}, err
	}

	result := ChangeOrderStatusResult{
		OrderID: o.ID(),
		Status:  current,
		Changed: current != previous,
	}
	if !result.Changed {
		return result, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	event := ports.OrderStatusChanged{
		OrderID:   o.ID(),
		From:      previous,
		To:        current,
		ChangedBy: cmd.Caller().Subject(),
		ChangedAt: h.clock().UTC(),
	}
	h.logger.InfoContext(ctx, "order status changed",
		"order_id", event.OrderID.String(),
		"from", event.From.String(),
		"to", event.To.String(),
		"changed_by", event.ChangedBy,
	)

	if err = h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish status change",
			"order_id", event.OrderID.String(),
			"error", err,
		)
	}

	return result, nil
}
