package vehicle

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Load is the weight and volume a vehicle currently carries, or the payload of a single order.
// The zero value is an empty load.
type Load struct {
	weightKg decimal.Decimal
	volumeM3 decimal.Decimal
}

func NewLoad(weightKg, volumeM3 decimal.Decimal) Load {
	return Load{weightKg: weightKg, volumeM3: volumeM3}
}

func (l Load) WeightKg() decimal.Decimal {
	return l.weightKg
}

func (l Load) VolumeM3() decimal.Decimal {
	return l.volumeM3
}

func (l Load) Add(other Load) Load {
	return Load{
		weightKg: l.weightKg.Add(other.weightKg),
		volumeM3: l.volumeM3.Add(other.volumeM3),
	}
}

func (l Load) Sub(other Load) Load {
	return Load{
		weightKg: l.weightKg.Sub(other.weightKg),
		volumeM3: l.volumeM3.Sub(other.volumeM3),
	}
}

// IsEqual compares numerically, so 1.50 equals 1.5.
func (l Load) IsEqual(other Load) bool {
	return l.weightKg.Equal(other.weightKg) && l.volumeM3.Equal(other.volumeM3)
}

func (l Load) IsZero() bool {
	return l.weightKg.IsZero() && l.volumeM3.IsZero()
}

func (l Load) String() string {
	return fmt.Sprintf("%s kg, %s m3", l.weightKg, l.volumeM3)
}

// Utilization holds unclamped weight and volume percentages.
// Only DisplayPct is clamped; capacity decisions never look at it.
type Utilization struct {
	weightPct float64
	volumePct float64
}

func (u Utilization) WeightPct() float64 {
	return u.weightPct
}

func (u Utilization) VolumePct() float64 {
	return u.volumePct
}

// DisplayPct is the larger of both percentages capped at 100.
func (u Utilization) DisplayPct() float64 {
	return math.Min(math.Max(u.weightPct, u.volumePct), 100)
}
