package ports

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
)

// OrderStatusChanged is published after a status change has been committed.
type OrderStatusChanged struct {
	OrderID   kernel.UUID
	From      order.Status
	To        order.Status
	ChangedBy string
	ChangedAt time.Time
}

// OrderEventPublisher delivers order events to interested systems.
// Delivery is at most once; the order change itself is already durable.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event OrderStatusChanged) error
}
