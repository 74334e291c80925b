package commands

import (
	"context"

	"fleet/internal/core/domain/model/order"
)

// MarkOrderShippedCommandHandler records that an assigned order left with its
// vehicle. A shipped order keeps counting towards the vehicle's load.
type MarkOrderShippedCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkOrderShippedCommandHandler(uowFactory OrderUoWFactory) MarkOrderShippedCommandHandler {
	return MarkOrderShippedCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h MarkOrderShippedCommandHandler) Handle(ctx context.Context, cmd MarkOrderShippedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).MarkShipped)
}
