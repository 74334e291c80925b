// Package eventlog provides an event publisher that only logs. It stands in
// for the broker when no RabbitMQ URL is configured.
package eventlog

import (
	"context"
	"log/slog"

	"fleet/internal/core/domain/model/order"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "event_log")}
}

func (p *Publisher) Publish(ctx context.Context, events ...order.Event) error {
	for _, e := range events {
		p.logger.DebugContext(ctx, "order event",
			"type", string(e.Type),
			"order_id", e.OrderID.String(),
			"status", e.Status.String())
	}
	return nil
}
