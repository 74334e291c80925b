package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrUnassignOrderCommandIsNotConstructed = errors.New(
	"UnassignOrderCommand must be created via NewUnassignOrderCommand constructor",
)

type UnassignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewUnassignOrderCommand(orderID kernel.UUID) (UnassignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UnassignOrderCommand{}, err
	}

	return UnassignOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UnassignOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnassignOrderCommandIsNotConstructed)
}

func (c UnassignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
