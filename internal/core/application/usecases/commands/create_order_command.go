package commands

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrGoodsIsRequired = errs.NewValueIsRequiredError("goods")
)

// CreateOrderCommand represents a request to plan a new forwarding order.
// A nil carrier means the goods travel on a company truck.
//
// Example:
//
//	carrierID := carrier.ID()
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), &carrierID, "20 pallets of tiles")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	carrierID *kernel.UUID
	goods     string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID kernel.UUID, carrierID *kernel.UUID, goods string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCarrierID(carrierID),
		cmd.setGoods(goods),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CarrierID returns the external carrier or nil for a company truck.
func (c CreateOrderCommand) CarrierID() *kernel.UUID {
	return c.carrierID
}

func (c CreateOrderCommand) Goods() string {
	return c.goods
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCarrierID(carrierID *kernel.UUID) error {
	if carrierID == nil {
		return nil
	}
	if err := carrierID.Validate(); err != nil {
		return err
	}

	id := *carrierID
	c.carrierID = &id
	return nil
}

func (c *CreateOrderCommand) setGoods(goods string) error {
	goods = strings.TrimSpace(goods)
	if goods == "" {
		return ErrGoodsIsRequired
	}

	c.goods = goods
	return nil
}
