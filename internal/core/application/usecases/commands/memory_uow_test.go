package commands_test

import (
	"context"
	"sync"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// memoryStore is an in-memory fleet. A single mutex held from Begin to
// Commit or Rollback stands in for the row locks of the real database.
type memoryStore struct {
	mu       sync.Mutex
	zones    map[kernel.UUID]*zone.Zone
	vehicles map[kernel.UUID]*vehicle.Vehicle
	orders   map[kernel.UUID]*order.Order
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		zones:    make(map[kernel.UUID]*zone.Zone),
		vehicles: make(map[kernel.UUID]*vehicle.Vehicle),
		orders:   make(map[kernel.UUID]*order.Order),
	}
}

func (s *memoryStore) factory() uowFactory {
	return func() commands.UoW { return &memoryUoW{store: s} }
}

func (s *memoryStore) orderFactory() orderUoWFactory {
	return func() commands.OrderUoW { return &memoryUoW{store: s} }
}

type memoryUoW struct {
	store  *memoryStore
	active bool
}

func (u *memoryUoW) Begin(context.Context) error {
	u.store.mu.Lock()
	u.active = true
	return nil
}

func (u *memoryUoW) Commit(context.Context) error {
	return u.end()
}

func (u *memoryUoW) Rollback(context.Context) error {
	return u.end()
}

func (u *memoryUoW) end() error {
	if !u.active {
		return errs.NewInvalidStateError("unit of work", "closed", "end")
	}
	u.active = false
	u.store.mu.Unlock()
	return nil
}

func (u *memoryUoW) ZoneRepository() ports.ZoneRepository       { return memoryZones{u.store} }
func (u *memoryUoW) VehicleRepository() ports.VehicleRepository { return memoryVehicles{u.store} }
func (u *memoryUoW) OrderRepository() ports.OrderRepository     { return memoryOrders{u.store} }

type memoryZones struct{ s *memoryStore }

func (r memoryZones) Add(_ context.Context, z *zone.Zone) error {
	r.s.zones[z.ID()] = z
	return nil
}

func (r memoryZones) Get(_ context.Context, id kernel.UUID) (*zone.Zone, error) {
	if z, ok := r.s.zones[id]; ok {
		return z, nil
	}
	return nil, errs.NewObjectNotFoundError("zone", id)
}

func (r memoryZones) GetForShare(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	return r.Get(ctx, id)
}

func (r memoryZones) GetForUpdate(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	return r.Get(ctx, id)
}

func (r memoryZones) Delete(_ context.Context, id kernel.UUID) error {
	delete(r.s.zones, id)
	return nil
}

type memoryVehicles struct{ s *memoryStore }

func (r memoryVehicles) Add(_ context.Context, v *vehicle.Vehicle) error {
	r.s.vehicles[v.ID()] = v
	return nil
}

func (r memoryVehicles) Get(_ context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if v, ok := r.s.vehicles[id]; ok {
		return v, nil
	}
	return nil, errs.NewObjectNotFoundError("vehicle", id)
}

func (r memoryVehicles) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.Get(ctx, id)
}

func (r memoryVehicles) CountByZone(_ context.Context, zoneID kernel.UUID) (int64, error) {
	var n int64
	for _, v := range r.s.vehicles {
		if z := v.ZoneID(); z != nil && z.IsEqual(zoneID) {
			n++
		}
	}
	return n, nil
}

func (r memoryVehicles) Delete(_ context.Context, id kernel.UUID) error {
	delete(r.s.vehicles, id)
	return nil
}

type memoryOrders struct{ s *memoryStore }

func (r memoryOrders) Add(_ context.Context, o *order.Order) error {
	r.s.orders[o.ID()] = o
	return nil
}

func (r memoryOrders) Update(_ context.Context, o *order.Order) error {
	r.s.orders[o.ID()] = o
	return nil
}

func (r memoryOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if o, ok := r.s.orders[id]; ok {
		return o, nil
	}
	return nil, errs.NewObjectNotFoundError("order", id)
}

func (r memoryOrders) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r memoryOrders) GetActiveByVehicle(_ context.Context, vehicleID kernel.UUID) ([]*order.Order, error) {
	var out []*order.Order
	for _, o := range r.s.orders {
		if id := o.VehicleID(); id != nil && id.IsEqual(vehicleID) && o.Status().HoldsCapacity() {
			out = append(out, o)
		}
	}
	return out, nil
}
