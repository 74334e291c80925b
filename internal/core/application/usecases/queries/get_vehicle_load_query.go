package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrGetVehicleLoadQueryIsNotConstructed = errors.New(
	"GetVehicleLoadQuery must be created via NewGetVehicleLoadQuery constructor",
)

// GetVehicleLoadQuery reads the current load and utilization of one vehicle.
type GetVehicleLoadQuery struct {
	vehicleID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetVehicleLoadQuery(vehicleID kernel.UUID) (GetVehicleLoadQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetVehicleLoadQuery{}, errs.NewValueIsRequiredErrorWithCause("vehicle_id", err)
	}

	return GetVehicleLoadQuery{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetVehicleLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleLoadQueryIsNotConstructed)
}

func (q GetVehicleLoadQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}
