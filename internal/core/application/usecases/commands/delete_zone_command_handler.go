package commands

import (
	"context"
	"fmt"

	"fleet/internal/pkg/errs"
)

// DeleteZoneCommandHandler removes a zone unless a vehicle is still bound to it.
//
// The zone row is locked first. Vehicle creation takes a shared lock on the
// zone it binds to, so a vehicle cannot appear between the count and the delete.
type DeleteZoneCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteZoneCommandHandler(uowFactory UoWFactory) DeleteZoneCommandHandler {
	return DeleteZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteZoneCommandHandler) Handle(ctx context.Context, cmd DeleteZoneCommand) error {
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

	zoneRepo := uow.ZoneRepository()
	z, err := zoneRepo.GetForUpdate(ctx, cmd.ZoneID())
	if err != nil {
		return err
	}

	count, err := uow.VehicleRepository().CountByZone(ctx, z.ID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewConflictError("zone", z.ID(), fmt.Sprintf("%d vehicle(s) are still assigned to it", count))
	}

	if err = zoneRepo.Delete(ctx, z.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
