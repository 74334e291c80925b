package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/principal"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a shipment on behalf of the principal's company.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(p, "Chairs", weight, length, width, height, 12.97, 77.59)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	companyID  kernel.UUID
	itemName   string
	weightKg   decimal.Decimal
	dimensions order.Dimensions
	pickup     kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	caller principal.Principal,
	itemName string,
	weightKg decimal.Decimal,
	lengthCm, widthCm, heightCm decimal.Decimal,
	pickupLat, pickupLng float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		itemName: itemName,
		weightKg: weightKg,
		guard:    guard.NewConstructorGuard(),
	}

	if err := caller.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	if err := errors.Join(
		cmd.setCompany(caller),
		cmd.setDimensions(lengthCm, widthCm, heightCm),
		cmd.setPickup(pickupLat, pickupLng),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c CreateOrderCommand) ItemName() string {
	return c.itemName
}

func (c CreateOrderCommand) WeightKg() decimal.Decimal {
	return c.weightKg
}

func (c CreateOrderCommand) Dimensions() order.Dimensions {
	return c.dimensions
}

func (c CreateOrderCommand) Pickup() kernel.GeoPoint {
	return c.pickup
}

func (c *CreateOrderCommand) setCompany(caller principal.Principal) error {
	companyID, ok := caller.CompanyID()
	if !ok {
		return errs.NewForbiddenError("orders can only be placed on behalf of a company")
	}
	c.companyID = companyID
	return nil
}

func (c *CreateOrderCommand) setDimensions(lengthCm, widthCm, heightCm decimal.Decimal) error {
	d, err := order.NewDimensions(lengthCm, widthCm, heightCm)
	if err != nil {
		return err
	}
	c.dimensions = d
	return nil
}

func (c *CreateOrderCommand) setPickup(lat, lng float64) error {
	p, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickup_point", err)
	}
	c.pickup = p
	return nil
}
