package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteVehicleCommand(vehicleID kernel.UUID) (DeleteVehicleCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return DeleteVehicleCommand{}, err
	}

	return DeleteVehicleCommand{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

func (c DeleteVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
