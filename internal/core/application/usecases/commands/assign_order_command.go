package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand commits an order to a vehicle chosen by the caller,
// typically from the compatible vehicles listing.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignOrderCommand(orderID, vehicleID kernel.UUID) (AssignOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), vehicleID.Validate()); err != nil {
		return AssignOrderCommand{}, err
	}

	return AssignOrderCommand{
		orderID:   orderID,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
