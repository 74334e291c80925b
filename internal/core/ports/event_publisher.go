package ports

import (
	"context"

	"fleet/internal/core/domain/model/order"
)

// EventPublisher delivers order lifecycle events to other systems.
// It is called only after the transaction that produced the events committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
