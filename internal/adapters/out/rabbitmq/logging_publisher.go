package rabbitmq

import (
	"context"
	"log/slog"

	"forwarding/internal/core/ports"
)

// LoggingPublisher writes events to the log instead of a broker. It stands in
// for Publisher when no broker URL is configured and uses the same payload.
type LoggingPublisher struct {
	logger *slog.Logger
}

var _ ports.OrderEventPublisher = LoggingPublisher{}

func NewLoggingPublisher(logger *slog.Logger) LoggingPublisher {
	return LoggingPublisher{logger: logger.With("component", "LoggingPublisher")}
}

func (p LoggingPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	body, err := encodeStatusChanged(event)
	if err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "event",
		"routing_key", RoutingKeyStatusChanged,
		"body", string(body),
	)
	return nil
}
