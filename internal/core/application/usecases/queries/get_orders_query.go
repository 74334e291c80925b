package queries

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/principal"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders visible to the caller, newest first.
// Administrators see every order, clients only those of their own company.
type GetOrdersQuery struct {
	caller principal.Principal
	guard  guard.ConstructorGuard
}

func NewGetOrdersQuery(caller principal.Principal) (GetOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("principal", err)
	}

	return GetOrdersQuery{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Caller() principal.Principal {
	return q.caller
}

// GetOrdersQueryResponse is an order as listed to its owner or an administrator.
// VehicleNumber is resolved for assigned and shipped orders.
type GetOrdersQueryResponse struct {
	ID            kernel.UUID
	CompanyID     kernel.UUID
	ItemName      string
	WeightKg      decimal.Decimal
	LengthCm      decimal.Decimal
	WidthCm       decimal.Decimal
	HeightCm      decimal.Decimal
	VolumeM3      decimal.Decimal
	Pickup        kernel.GeoPoint
	Status        order.Status
	VehicleID     *kernel.UUID
	VehicleNumber *string
	CreatedAt     time.Time
}
