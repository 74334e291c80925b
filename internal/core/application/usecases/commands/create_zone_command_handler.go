package commands

import (
	"context"

	"fleet/internal/core/domain/model/zone"
)

// CreateZoneCommandHandler persists new zones. Zone names are unique; the
// repository reports a duplicate as an invalid value.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
}

func NewCreateZoneCommandHandler(uowFactory ZoneUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) (*zone.Zone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	z, err := zone.NewZone(cmd.Name(), cmd.Boundary())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ZoneRepository().Add(ctx, z); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return z, nil
}
