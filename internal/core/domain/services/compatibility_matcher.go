package services

import (
	"errors"
	"slices"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/pkg/errs"
)

// CompatibilityMatcher decides whether a vehicle may legally carry an order.
//
// A vehicle is compatible with an order when:
//   - the vehicle is bound to a zone and that zone contains the pickup point
//   - its current load plus the order's payload stays within both limits
//
// The same check backs both the read-only compatibility listing and the
// commit-time validation of an assignment, so the two cannot disagree.
//
// Example usage:
//
//	matcher := services.NewCompatibilityMatcher()
//	loads := services.NewCapacityTracker().LoadsByVehicle(activeOrders)
//	candidates, err := matcher.CompatibleVehicles(o, vehicles, zonesByID, loads)
type CompatibilityMatcher struct{}

func NewCompatibilityMatcher() CompatibilityMatcher {
	return CompatibilityMatcher{}
}

// CheckCompatible returns nil when v can take o on top of current.
//
// z must be the zone v is bound to, or nil when the vehicle has none. Every
// eligibility failure is an errs.CapacityExceededError whose reason names the
// failed rule; validation failures of the arguments are returned unchanged.
func (m CompatibilityMatcher) CheckCompatible(
	o *order.Order,
	v *vehicle.Vehicle,
	z *zone.Zone,
	current vehicle.Load,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}

	zoneID := v.ZoneID()
	if zoneID == nil {
		return errs.NewCapacityExceededError(v.ID(), "vehicle is not assigned to a zone")
	}
	if z == nil || !z.ID().IsEqual(*zoneID) {
		return errs.NewCapacityExceededError(v.ID(), "vehicle zone "+zoneID.String()+" is not available")
	}
	if !z.Contains(o.Pickup()) {
		return errs.NewCapacityExceededError(v.ID(), "pickup point is outside zone "+z.Name())
	}

	return v.CheckCanCarry(current, o.Payload())
}

// CompatibleVehicles filters vehicles down to those compatible with o.
//
// zones is keyed by zone id and loads by vehicle id; a vehicle missing from
// loads is treated as empty. The result is sorted by vehicle id so repeated
// calls over the same state return the same sequence. An empty result is a
// regular outcome, not an error.
func (m CompatibilityMatcher) CompatibleVehicles(
	o *order.Order,
	vehicles []*vehicle.Vehicle,
	zones map[kernel.UUID]*zone.Zone,
	loads map[kernel.UUID]vehicle.Load,
) ([]*vehicle.Vehicle, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	compatible := make([]*vehicle.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		var z *zone.Zone
		if zoneID := v.ZoneID(); zoneID != nil {
			z = zones[*zoneID]
		}

		err := m.CheckCompatible(o, v, z, loads[v.ID()])
		switch {
		case err == nil:
			compatible = append(compatible, v)
		case errors.Is(err, errs.ErrCapacityExceeded):
			continue
		default:
			return nil, err
		}
	}

	slices.SortFunc(compatible, func(a, b *vehicle.Vehicle) int {
		return a.ID().Compare(b.ID())
	})
	return compatible, nil
}

// Assign re-validates compatibility and then moves o to Assigned on v.
// current must be the load of v read under the same lock that protects the commit.
func (m CompatibilityMatcher) Assign(
	o *order.Order,
	v *vehicle.Vehicle,
	z *zone.Zone,
	current vehicle.Load,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	// Status first: assigning a shipped order is an invalid state even if the vehicle is full.
	if _, err := o.Status().Assign(); err != nil {
		return err
	}
	if err := m.CheckCompatible(o, v, z, current); err != nil {
		return err
	}
	return o.Assign(v.ID())
}
