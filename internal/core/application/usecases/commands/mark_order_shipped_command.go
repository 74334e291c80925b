package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrMarkOrderShippedCommandIsNotConstructed = errors.New(
	"MarkOrderShippedCommand must be created via NewMarkOrderShippedCommand constructor",
)

type MarkOrderShippedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderShippedCommand(orderID kernel.UUID) (MarkOrderShippedCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderShippedCommand{}, err
	}

	return MarkOrderShippedCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderShippedCommandIsNotConstructed)
}

func (c MarkOrderShippedCommand) OrderID() kernel.UUID {
	return c.orderID
}
