package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrGetCompatibleVehiclesQueryIsNotConstructed = errors.New(
	"GetCompatibleVehiclesQuery must be created via NewGetCompatibleVehiclesQuery constructor",
)

// GetCompatibleVehiclesQuery finds the vehicles that could take an order now:
// their zone contains the pickup point and the order fits on top of their
// current load. The answer is advisory. Assignment checks again under lock.
type GetCompatibleVehiclesQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetCompatibleVehiclesQuery(orderID kernel.UUID) (GetCompatibleVehiclesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetCompatibleVehiclesQuery{}, errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}

	return GetCompatibleVehiclesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetCompatibleVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetCompatibleVehiclesQueryIsNotConstructed)
}

func (q GetCompatibleVehiclesQuery) OrderID() kernel.UUID {
	return q.orderID
}
