// Package ports defines the contracts between the fleet domain and its adapters.
// Repositories persist aggregates; EventPublisher ships order lifecycle events.
package ports

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/zone"
)

// ZoneRepository persists service zones.
type ZoneRepository interface {
	// Add stores a new zone. A duplicate name is an errs.ValueIsInvalidError.
	Add(ctx context.Context, aggregate *zone.Zone) error

	// Get returns the zone or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetForShare reads the zone and keeps it from being deleted until the
	// transaction ends. Used when binding a vehicle to the zone.
	GetForShare(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetForUpdate reads the zone under an exclusive row lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// Delete removes the zone. It fails with errs.ConflictError while vehicles reference it.
	Delete(ctx context.Context, id kernel.UUID) error
}
