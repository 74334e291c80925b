package order

import (
	"errors"
	"fmt"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")

// Dimensions is the parcel size in centimetres.
type Dimensions struct {
	lengthCm decimal.Decimal
	widthCm  decimal.Decimal
	heightCm decimal.Decimal
	guard    guard.ConstructorGuard
}

func NewDimensions(lengthCm, widthCm, heightCm decimal.Decimal) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		positive("length_cm", lengthCm),
		positive("width_cm", widthCm),
		positive("height_cm", heightCm),
	); err != nil {
		return Dimensions{}, err
	}

	d.lengthCm, d.widthCm, d.heightCm = lengthCm, widthCm, heightCm
	return d, nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d Dimensions) LengthCm() decimal.Decimal {
	return d.lengthCm
}

func (d Dimensions) WidthCm() decimal.Decimal {
	return d.widthCm
}

func (d Dimensions) HeightCm() decimal.Decimal {
	return d.heightCm
}

// VolumeM3 is l*w*h / 1_000_000. Shifting the exponent keeps the result exact.
func (d Dimensions) VolumeM3() decimal.Decimal {
	return d.lengthCm.Mul(d.widthCm).Mul(d.heightCm).Shift(-6)
}

func positive(name string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is not greater than 0", v))
	}
	return nil
}
