package vehicle

import (
	"errors"
	"fmt"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCapacityIsNotConstructed = errors.New("Capacity must be created via NewCapacity constructor")

	hundred = decimal.NewFromInt(100)
)

// Capacity is the maximum payload of a vehicle in kilograms and cubic metres.
type Capacity struct {
	maxWeightKg decimal.Decimal
	maxVolumeM3 decimal.Decimal
	guard       guard.ConstructorGuard
}

// NewCapacity requires both limits to be strictly positive.
func NewCapacity(maxWeightKg, maxVolumeM3 decimal.Decimal) (Capacity, error) {
	c := Capacity{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setMaxWeight(maxWeightKg),
		c.setMaxVolume(maxVolumeM3),
	); err != nil {
		return Capacity{}, err
	}

	return c, nil
}

func (c Capacity) Validate() error {
	return c.guard.Validate(ErrCapacityIsNotConstructed)
}

func (c Capacity) MaxWeightKg() decimal.Decimal {
	return c.maxWeightKg
}

func (c Capacity) MaxVolumeM3() decimal.Decimal {
	return c.maxVolumeM3
}

// Fits reports whether extra can be added on top of current without
// exceeding either limit. Reaching a limit exactly is allowed.
func (c Capacity) Fits(current, extra Load) bool {
	total := current.Add(extra)
	return total.weightKg.LessThanOrEqual(c.maxWeightKg) && total.volumeM3.LessThanOrEqual(c.maxVolumeM3)
}

// IsExceededBy reports whether load is above either limit.
func (c Capacity) IsExceededBy(load Load) bool {
	return load.weightKg.GreaterThan(c.maxWeightKg) || load.volumeM3.GreaterThan(c.maxVolumeM3)
}

// UtilizationOf expresses load as percentages of this capacity.
func (c Capacity) UtilizationOf(load Load) Utilization {
	return Utilization{
		weightPct: load.weightKg.Div(c.maxWeightKg).Mul(hundred).InexactFloat64(),
		volumePct: load.volumeM3.Div(c.maxVolumeM3).Mul(hundred).InexactFloat64(),
	}
}

func (c *Capacity) setMaxWeight(v decimal.Decimal) error {
	if !v.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("max_weight_kg", fmt.Errorf("%s is not greater than 0", v))
	}
	c.maxWeightKg = v
	return nil
}

func (c *Capacity) setMaxVolume(v decimal.Decimal) error {
	if !v.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("max_volume_m3", fmt.Errorf("%s is not greater than 0", v))
	}
	c.maxVolumeM3 = v
	return nil
}
