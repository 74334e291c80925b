package commands

import (
	"context"

	"fleet/internal/core/domain/model/order"
)

// UnassignOrderCommandHandler takes an assigned order off its vehicle and
// returns it to PENDING, releasing its share of the vehicle's capacity.
type UnassignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUnassignOrderCommandHandler(uowFactory OrderUoWFactory) UnassignOrderCommandHandler {
	return UnassignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UnassignOrderCommandHandler) Handle(ctx context.Context, cmd UnassignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Unassign)
}
