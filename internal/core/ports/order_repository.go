package ports

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add stores a new order and tracks it for event publication.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes status and vehicle reference of an existing order and
	// tracks it for event publication.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate reads the order under an exclusive row lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByVehicle returns the orders that currently hold capacity on vehicleID,
	// that is orders in ASSIGNED or SHIPPED status.
	GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*order.Order, error)
}
