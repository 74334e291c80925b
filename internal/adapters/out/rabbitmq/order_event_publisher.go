// Package rabbitmq publishes order lifecycle events to a RabbitMQ fanout exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

var _ ports.EventPublisher = (*OrderEventPublisher)(nil)

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type OrderEventPublisher struct {
	ch       channel
	exchange string
}

// NewOrderEventPublisher opens a channel on conn and declares a durable fanout
// exchange. Consumers bind their own queues to it.
func NewOrderEventPublisher(conn *amqp.Connection, exchange string) (*OrderEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return newOrderEventPublisher(ch, exchange), nil
}

func newOrderEventPublisher(ch channel, exchange string) *OrderEventPublisher {
	return &OrderEventPublisher{ch: ch, exchange: exchange}
}

type eventMessage struct {
	EventID    string  `json:"event_id"`
	Type       string  `json:"type"`
	OrderID    string  `json:"order_id"`
	CompanyID  string  `json:"company_id"`
	VehicleID  *string `json:"vehicle_id"`
	Status     string  `json:"status"`
	OccurredAt string  `json:"occurred_at"`
}

// Publish sends every event as its own persistent JSON message, routed by
// event type. It stops at the first failure.
func (p *OrderEventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	for _, e := range events {
		body, err := json.Marshal(toMessage(e))
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", e.Type, err)
		}

		err = p.ch.PublishWithContext(ctx, p.exchange, string(e.Type), false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.ID.String(),
			Type:         string(e.Type),
			Timestamp:    e.OccurredAt,
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("publish %s event for order %s: %w", e.Type, e.OrderID, err)
		}
	}
	return nil
}

func toMessage(e order.Event) eventMessage {
	msg := eventMessage{
		EventID:    e.ID.String(),
		Type:       string(e.Type),
		OrderID:    e.OrderID.String(),
		CompanyID:  e.CompanyID.String(),
		Status:     e.Status.String(),
		OccurredAt: e.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	if e.VehicleID != nil {
		id := e.VehicleID.String()
		msg.VehicleID = &id
	}
	return msg
}
