package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const component = "order events"

var (
	ErrURLIsRequired      = errs.NewValueIsRequiredError("rabbitmq url")
	ErrExchangeIsRequired = errs.NewValueIsRequiredError("exchange")
	ErrPublishNacked      = errors.New("publish NACK from broker")
)

// confirmingChannel publishes and hands back the broker confirm for that one
// delivery tag. *amqp.Channel satisfies it through amqpChannel.
type confirmingChannel interface {
	Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error)
	Close() error
}

type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type amqpChannel struct {
	ch *amqp.Channel
}

func (c amqpChannel) Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error) {
	dc, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errors.New("channel is not in confirm mode")
	}
	return dc, nil
}

func (c amqpChannel) Close() error {
	return c.ch.Close()
}

// Publisher implements ports.OrderEventPublisher on a confirm-mode channel.
// Every publish waits for the confirm of its own delivery tag, so a confirm
// abandoned by a cancelled call is never taken for a later one.
type Publisher struct {
	conn     *amqp.Connection
	ch       confirmingChannel
	exchange string
	logger   *slog.Logger
}

var _ ports.OrderEventPublisher = (*Publisher)(nil)

// Dial connects, declares a durable topic exchange and enables publisher
// confirms.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	if url == "" {
		return nil, ErrURLIsRequired
	}
	if exchange == "" {
		return nil, ErrExchangeIsRequired
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.NewInfrastructureError(component, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.NewInfrastructureError(component, err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.NewInfrastructureError(component, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.NewInfrastructureError(component, err)
	}

	p := newPublisher(amqpChannel{ch: ch}, exchange, logger)
	p.conn = conn
	return p, nil
}

func newPublisher(ch confirmingChannel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "RabbitMQPublisher"),
	}
}

// PublishStatusChanged sends a persistent JSON message and waits for the
// broker confirm or ctx cancellation.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	body, err := encodeStatusChanged(event)
	if err != nil {
		return err
	}

	conf, err := p.ch.Publish(ctx, p.exchange, RoutingKeyStatusChanged, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    fmt.Sprintf("%s:%s", event.OrderID, event.To),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return errs.NewInfrastructureError(component, err)
	}

	acked, err := conf.WaitContext(ctx)
	if err != nil {
		return errs.NewInfrastructureError(component, err)
	}
	if !acked {
		return errs.NewInfrastructureError(component, ErrPublishNacked)
	}

	p.logger.DebugContext(ctx, "event published",
		"routing_key", RoutingKeyStatusChanged,
		"order_id", event.OrderID.String(),
	)
	return nil
}

// Ping reports whether the connection is still open.
func (p *Publisher) Ping() error {
	if p.conn == nil || p.conn.IsClosed() {
		return errs.NewInfrastructureError(component, amqp.ErrClosed)
	}
	return nil
}

func (p *Publisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
