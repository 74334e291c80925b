package commands

import (
	"context"

	"fleet/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler registers vehicles.
//
// When the vehicle is bound to a zone, the zone is read with a shared lock so
// that a concurrent zone deletion waits for this transaction and then sees the
// new vehicle.
type CreateVehicleCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateVehicleCommandHandler(uowFactory UoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if zoneID := cmd.ZoneID(); zoneID != nil {
		if _, err := uow.ZoneRepository().GetForShare(ctx, *zoneID); err != nil {
			return nil, err
		}
	}

	v, err := vehicle.NewVehicle(cmd.Number(), cmd.Capacity(), cmd.ZoneID())
	if err != nil {
		return nil, err
	}

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return v, nil
}
