package commands

import (
	"context"

	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/errs"
)

// CancelOrderCommandHandler moves a PENDING order to CANCELLED.
// An ASSIGNED order has to be unassigned first; there is no implicit
// unassign-and-cancel.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		if !cmd.Caller().CanActFor(o.CompanyID()) {
			return errs.NewForbiddenError("cancel an order of another company")
		}
		return o.Cancel()
	})
}
