package commands

import (
	"context"
	"fmt"

	"fleet/internal/pkg/errs"
)

// DeleteVehicleCommandHandler removes a vehicle that carries no assigned or
// shipped orders. The vehicle row lock is the same one assignments take, so an
// assignment cannot land between the check and the delete.
type DeleteVehicleCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteVehicleCommandHandler(uowFactory UoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
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

	vehicleRepo := uow.VehicleRepository()
	v, err := vehicleRepo.GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	active, err := uow.OrderRepository().GetActiveByVehicle(ctx, v.ID())
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return errs.NewConflictError("vehicle", v.ID(), fmt.Sprintf("%d active order(s) are assigned to it", len(active)))
	}

	if err = vehicleRepo.Delete(ctx, v.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
