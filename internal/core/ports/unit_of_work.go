package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for every command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. Repositories obtained
// from it after Begin run inside the transaction. Commit publishes the events
// of tracked aggregates once the transaction is durable.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ZoneRepository() ZoneRepository
	VehicleRepository() VehicleRepository
	OrderRepository() OrderRepository
}
