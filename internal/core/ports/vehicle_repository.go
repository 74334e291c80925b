package ports

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
)

// VehicleRepository persists vehicles.
type VehicleRepository interface {
	// Add stores a new vehicle. A duplicate number is an errs.ValueIsInvalidError.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetForUpdate reads the vehicle under an exclusive row lock. Every change
	// to the vehicle's load happens while this lock is held, which serializes
	// concurrent assignments to the same vehicle.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// CountByZone returns how many vehicles are bound to zoneID.
	CountByZone(ctx context.Context, zoneID kernel.UUID) (int64, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
