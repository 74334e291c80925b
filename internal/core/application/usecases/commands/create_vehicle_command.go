package commands

import (
	"errors"
	"strings"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand adds a vehicle to the fleet, optionally bound to a zone.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	number   string
	capacity vehicle.Capacity
	zoneID   *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateVehicleCommand(
	number string,
	maxWeightKg decimal.Decimal,
	maxVolumeM3 decimal.Decimal,
	zoneID *kernel.UUID,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setCapacity(maxWeightKg, maxVolumeM3),
		cmd.setZoneID(zoneID),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) Number() string {
	return c.number
}

func (c CreateVehicleCommand) Capacity() vehicle.Capacity {
	return c.capacity
}

// ZoneID is nil for a vehicle that is not bound to a zone.
func (c CreateVehicleCommand) ZoneID() *kernel.UUID {
	return c.zoneID
}

func (c *CreateVehicleCommand) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("vehicle_number")
	}
	c.number = number
	return nil
}

func (c *CreateVehicleCommand) setCapacity(maxWeightKg, maxVolumeM3 decimal.Decimal) error {
	capacity, err := vehicle.NewCapacity(maxWeightKg, maxVolumeM3)
	if err != nil {
		return err
	}
	c.capacity = capacity
	return nil
}

func (c *CreateVehicleCommand) setZoneID(zoneID *kernel.UUID) error {
	if zoneID == nil {
		return nil
	}
	if err := zoneID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("zone_id", err)
	}
	id := *zoneID
	c.zoneID = &id
	return nil
}
