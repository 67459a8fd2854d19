package services

import (
	"time"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
)

// OrderPlanner creates forwarding orders.
type OrderPlanner struct{}

func NewOrderPlanner() OrderPlanner {
	return OrderPlanner{}
}

// Plan creates an order for goods. With a nil carrier the order goes to a
// company truck; otherwise the carrier's insurance and licence must be valid
// on the creation day.
func (p OrderPlanner) Plan(id kernel.UUID, assigned *carrier.Carrier, goods string, now time.Time) (*order.Order, error) {
	if assigned == nil {
		return order.NewOrder(id, nil, goods, now)
	}

	if err := assigned.Validate(); err != nil {
		return nil, err
	}
	if err := assigned.ValidateDocumentsOn(now); err != nil {
		return nil, err
	}

	carrierID := assigned.ID()
	return order.NewOrder(id, &carrierID, goods, now)
}
