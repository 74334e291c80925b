package vehicle

import (
	"errors"
	"fmt"
	"strings"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrNumberIsRequired        = errs.NewValueIsRequiredError("vehicle_number")
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle is a truck or van with a finite payload.
//
// A vehicle may be bound to at most one zone. A vehicle without a zone is kept
// in the fleet but never matches an order. The current load is not stored on
// the vehicle; it is derived from the orders assigned to it.
type Vehicle struct {
	id       kernel.UUID
	number   string
	capacity Capacity
	zoneID   *kernel.UUID
	guard    guard.ConstructorGuard
}

// NewVehicle registers a new vehicle with a fresh identifier.
//
// Example:
//
//	capacity, _ := vehicle.NewCapacity(decimal.NewFromInt(100), decimal.NewFromInt(1))
//	v, err := vehicle.NewVehicle("KA-01-AB-1234", capacity, &zoneID)
func NewVehicle(number string, capacity Capacity, zoneID *kernel.UUID) (*Vehicle, error) {
	return RestoreVehicle(kernel.NewUUID(), number, capacity, zoneID)
}

// RestoreVehicle rebuilds a vehicle loaded from storage.
func RestoreVehicle(id kernel.UUID, number string, capacity Capacity, zoneID *kernel.UUID) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setNumber(number),
		v.setCapacity(capacity),
		v.setZone(zoneID),
	); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

func (v *Vehicle) Number() string {
	return v.number
}

func (v *Vehicle) Capacity() Capacity {
	return v.capacity
}

// ZoneID returns nil when the vehicle is not bound to a zone.
func (v *Vehicle) ZoneID() *kernel.UUID {
	if v.zoneID == nil {
		return nil
	}
	id := *v.zoneID
	return &id
}

// CheckCanCarry returns an errs.CapacityExceededError if adding extra to the
// current load would exceed either limit.
func (v *Vehicle) CheckCanCarry(current, extra Load) error {
	if v.capacity.Fits(current, extra) {
		return nil
	}

	total := current.Add(extra)
	var reasons []string
	if total.weightKg.GreaterThan(v.capacity.maxWeightKg) {
		reasons = append(reasons, fmt.Sprintf("weight %s kg exceeds max %s kg", total.weightKg, v.capacity.maxWeightKg))
	}
	if total.volumeM3.GreaterThan(v.capacity.maxVolumeM3) {
		reasons = append(reasons, fmt.Sprintf("volume %s m3 exceeds max %s m3", total.volumeM3, v.capacity.maxVolumeM3))
	}
	return errs.NewCapacityExceededError(v.id, strings.Join(reasons, ", "))
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrNumberIsRequired
	}
	v.number = number
	return nil
}

func (v *Vehicle) setCapacity(capacity Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	v.capacity = capacity
	return nil
}

func (v *Vehicle) setZone(zoneID *kernel.UUID) error {
	if zoneID == nil {
		v.zoneID = nil
		return nil
	}
	if err := zoneID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("zone_id", err)
	}
	id := *zoneID
	v.zoneID = &id
	return nil
}
