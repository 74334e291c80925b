package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/principal"
	"fleet/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a pending order. The caller must own the order
// or be an administrator.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	caller  principal.Principal
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(caller principal.Principal, orderID kernel.UUID) (CancelOrderCommand, error) {
	if err := errors.Join(caller.Validate(), orderID.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		caller:  caller,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Caller() principal.Principal {
	return c.caller
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
