// Package ports declares what the core needs from the outside world:
// persistence, credential lookup, password hashing, token signing and event
// publishing. Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
)

// OrderRepository persists forwarding orders.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get holding a row lock until the surrounding
	// transaction ends, so that concurrent status changes of one order
	// are serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
