// Package rabbitmq publishes order events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"encoding/json"
	"time"

	"forwarding/internal/core/ports"
)

// RoutingKeyStatusChanged is the routing key of order status change events.
const RoutingKeyStatusChanged = "order.status.changed"

// statusChangedMessage is the wire format of ports.OrderStatusChanged.
type statusChangedMessage struct {
	OrderID   string    `json:"order_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

func encodeStatusChanged(event ports.OrderStatusChanged) ([]byte, error) {
	return json.Marshal(statusChangedMessage{
		OrderID:   event.OrderID.String(),
		From:      event.From.String(),
		To:        event.To.String(),
		ChangedBy: event.ChangedBy,
		ChangedAt: event.ChangedAt.UTC(),
	})
}
