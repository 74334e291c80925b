package commands

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/zone"
	"fleet/internal/core/domain/services"
	"fleet/internal/pkg/errs"
)

// AssignOrderCommandHandler attaches a pending order to a vehicle.
//
// A compatibility answer computed earlier is not trusted. Inside the
// transaction the handler:
//  1. locks the vehicle row, serializing all assignments to that vehicle
//  2. locks the order row
//  3. recomputes the vehicle's load from its active orders
//  4. re-runs the zone and capacity check and applies the transition
//
// Two concurrent assignments to the same vehicle therefore run one after the
// other, and the second sees the first one's order in the load. A failed
// check is reported as errs.CapacityExceededError; the caller is expected to
// re-query compatible vehicles and retry explicitly.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	tracker    services.CapacityTracker
	matcher    services.CompatibilityMatcher
}

func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		tracker:    services.NewCapacityTracker(),
		matcher:    services.NewCompatibilityMatcher(),
	}
}

func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	v, err := uow.VehicleRepository().GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var z *zone.Zone
	if zoneID := v.ZoneID(); zoneID != nil {
		z, err = uow.ZoneRepository().Get(ctx, *zoneID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	active, err := orderRepo.GetActiveByVehicle(ctx, v.ID())
	if err != nil {
		return err
	}

	if err = h.matcher.Assign(o, v, z, h.tracker.LoadOf(v.ID(), active)); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
