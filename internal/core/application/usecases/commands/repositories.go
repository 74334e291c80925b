// Package commands contains the write side of the fleet engine.
// Every command handler validates its command, opens a unit of work, loads the
// aggregates under the row locks it needs, applies domain behaviour and commits.
// A failed handler leaves no partial state behind.
package commands

import (
	"context"

	"fleet/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ZoneUoW is used by commands that touch zones only.
	ZoneUoW interface {
		TxManager
		ZoneRepoFactory
	}

	ZoneUoWFactory interface {
		Create() ZoneUoW
	}

	// OrderUoW is used by status-only transitions, which lock a single order row.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans zones, vehicles and orders. Handlers that change a vehicle's
	// load or its references use it.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   v, err := uow.VehicleRepository().GetForUpdate(ctx, vehicleID)
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   // ... domain logic
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ZoneRepoFactory
		VehicleRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
