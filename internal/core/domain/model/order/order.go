package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const maxItemNameLength = 255

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a shipment placed by a client company. It is the aggregate root
// of the assignment lifecycle.
//
// Order keeps the following invariants:
//   - weight and every dimension are strictly positive
//   - volume is derived from the dimensions and never set directly
//   - a vehicle is referenced exactly while the status is Assigned or Shipped
//   - status changes only through Assign, Unassign, Cancel and MarkShipped
type Order struct {
	id         kernel.UUID
	companyID  kernel.UUID
	itemName   string
	weightKg   decimal.Decimal
	dimensions Dimensions
	volumeM3   decimal.Decimal
	pickup     kernel.GeoPoint
	status     Status
	vehicleID  *kernel.UUID
	createdAt  time.Time
	events     []Event
	guard      guard.ConstructorGuard
}

// NewOrder creates a Pending order for companyID and records an EventCreated.
// itemName is optional.
//
// Example:
//
//	dims, _ := order.NewDimensions(decimal.NewFromInt(50), decimal.NewFromInt(40), decimal.NewFromInt(20))
//	pickup, _ := kernel.NewGeoPoint(12.97, 77.59)
//	o, err := order.NewOrder(principal.CompanyID, "Chairs", decimal.NewFromInt(60), dims, pickup)
func NewOrder(
	companyID kernel.UUID,
	itemName string,
	weightKg decimal.Decimal,
	dimensions Dimensions,
	pickup kernel.GeoPoint,
) (*Order, error) {
	o, err := RestoreOrder(
		kernel.NewUUID(), companyID, itemName, weightKg, dimensions, pickup,
		Pending, nil, time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	o.raise(EventCreated)
	return o, nil
}

// RestoreOrder rebuilds an order from storage. It checks the same invariants
// as NewOrder plus the consistency of status and vehicle reference.
func RestoreOrder(
	id kernel.UUID,
	companyID kernel.UUID,
	itemName string,
	weightKg decimal.Decimal,
	dimensions Dimensions,
	pickup kernel.GeoPoint,
	status Status,
	vehicleID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCompany(companyID),
		o.setItemName(itemName),
		o.setWeight(weightKg),
		o.setDimensions(dimensions),
		o.setPickup(pickup),
		o.setStatus(status, vehicleID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CompanyID() kernel.UUID {
	return o.companyID
}

func (o *Order) ItemName() string {
	return o.itemName
}

func (o *Order) WeightKg() decimal.Decimal {
	return o.weightKg
}

func (o *Order) Dimensions() Dimensions {
	return o.dimensions
}

func (o *Order) VolumeM3() decimal.Decimal {
	return o.volumeM3
}

// Payload is the load the order adds to a vehicle.
func (o *Order) Payload() vehicle.Load {
	return vehicle.NewLoad(o.weightKg, o.volumeM3)
}

func (o *Order) Pickup() kernel.GeoPoint {
	return o.pickup
}

func (o *Order) Status() Status {
	return o.status
}

// VehicleID returns the assigned vehicle or nil.
func (o *Order) VehicleID() *kernel.UUID {
	if o.vehicleID == nil {
		return nil
	}
	id := *o.vehicleID
	return &id
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Assign attaches the order to vehicleID. Capacity and zone eligibility are
// checked by the caller under a lock on the vehicle; the order only guards its own state.
func (o *Order) Assign(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	next, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = next
	o.vehicleID = &vehicleID
	o.raise(EventAssigned)
	return nil
}

// Unassign detaches the order from its vehicle and returns it to Pending.
func (o *Order) Unassign() error {
	next, err := o.status.Unassign()
	if err != nil {
		return err
	}

	// The event carries the vehicle the order was taken off.
	o.status = next
	o.raise(EventUnassigned)
	o.vehicleID = nil
	return nil
}

func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = next
	o.raise(EventCancelled)
	return nil
}

func (o *Order) MarkShipped() error {
	next, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = next
	o.raise(EventShipped)
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(t EventType) {
	o.events = append(o.events, Event{
		ID:         kernel.NewUUID(),
		Type:       t,
		OrderID:    o.id,
		CompanyID:  o.companyID,
		VehicleID:  o.VehicleID(),
		Status:     o.status,
		OccurredAt: time.Now().UTC(),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCompany(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	o.companyID = companyID
	return nil
}

func (o *Order) setItemName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) > maxItemNameLength {
		return errs.NewValueIsOutOfRangeError("item_name length", len(name), 0, maxItemNameLength)
	}
	o.itemName = name
	return nil
}

func (o *Order) setWeight(weightKg decimal.Decimal) error {
	if !weightKg.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("weight_kg", fmt.Errorf("%s is not greater than 0", weightKg))
	}
	o.weightKg = weightKg
	return nil
}

func (o *Order) setDimensions(d Dimensions) error {
	if err := d.Validate(); err != nil {
		return err
	}
	o.dimensions = d
	o.volumeM3 = d.VolumeM3()
	return nil
}

func (o *Order) setPickup(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickup_point", err)
	}
	o.pickup = p
	return nil
}

func (o *Order) setStatus(status Status, vehicleID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveVehicle(vehicleID != nil); err != nil {
		return err
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return err
		}
		id := *vehicleID
		o.vehicleID = &id
	}
	o.status = status
	return nil
}
