package services

import (
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/vehicle"
)

// CapacityTracker derives vehicle loads from orders.
//
// Loads are never stored: they are recomputed from the orders that currently
// hold capacity (Assigned or Shipped), so they cannot drift from the order set
// when assignments change concurrently. The tracker is stateless and has no
// side effects.
type CapacityTracker struct{}

func NewCapacityTracker() CapacityTracker {
	return CapacityTracker{}
}

// LoadOf sums the payload of the orders in orders that hold capacity on vehicleID.
// Orders for other vehicles are ignored, so callers may pass any superset.
func (CapacityTracker) LoadOf(vehicleID kernel.UUID, orders []*order.Order) vehicle.Load {
	var load vehicle.Load
	for _, o := range orders {
		if !holdsCapacityOn(o, vehicleID) {
			continue
		}
		load = load.Add(o.Payload())
	}
	return load
}

// LoadsByVehicle groups the payload of capacity-holding orders by vehicle.
// Vehicles without such orders are absent from the map; their load is the zero Load.
func (CapacityTracker) LoadsByVehicle(orders []*order.Order) map[kernel.UUID]vehicle.Load {
	loads := make(map[kernel.UUID]vehicle.Load)
	for _, o := range orders {
		vehicleID := o.VehicleID()
		if vehicleID == nil || !o.Status().HoldsCapacity() {
			continue
		}
		loads[*vehicleID] = loads[*vehicleID].Add(o.Payload())
	}
	return loads
}

// UtilizationOf returns the current load of v together with its utilization.
func (t CapacityTracker) UtilizationOf(v *vehicle.Vehicle, orders []*order.Order) (vehicle.Load, vehicle.Utilization) {
	load := t.LoadOf(v.ID(), orders)
	return load, v.Capacity().UtilizationOf(load)
}

func holdsCapacityOn(o *order.Order, vehicleID kernel.UUID) bool {
	assigned := o.VehicleID()
	return assigned != nil && assigned.IsEqual(vehicleID) && o.Status().HoldsCapacity()
}
