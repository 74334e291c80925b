package queries

import (
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/domain/model/zone"

	"github.com/shopspring/decimal"
)

// VehicleResponse is the read model of a vehicle together with its live load.
// Utilization percentages are unclamped; UtilizationPct is the display value,
// the larger of the two capped at 100.
type VehicleResponse struct {
	ID                   kernel.UUID
	Number               string
	MaxWeightKg          decimal.Decimal
	MaxVolumeM3          decimal.Decimal
	ZoneID               *kernel.UUID
	ZoneName             string
	CurrentWeightKg      decimal.Decimal
	CurrentVolumeM3      decimal.Decimal
	WeightUtilizationPct float64
	VolumeUtilizationPct float64
	UtilizationPct       float64
}

// IsOverCapacity reports a load above either limit.
func (r VehicleResponse) IsOverCapacity() bool {
	return r.CurrentWeightKg.GreaterThan(r.MaxWeightKg) || r.CurrentVolumeM3.GreaterThan(r.MaxVolumeM3)
}

func newVehicleResponse(v *vehicle.Vehicle, zones map[kernel.UUID]*zone.Zone, load vehicle.Load) VehicleResponse {
	capacity := v.Capacity()
	utilization := capacity.UtilizationOf(load)

	resp := VehicleResponse{
		ID:                   v.ID(),
		Number:               v.Number(),
		MaxWeightKg:          capacity.MaxWeightKg(),
		MaxVolumeM3:          capacity.MaxVolumeM3(),
		ZoneID:               v.ZoneID(),
		CurrentWeightKg:      load.WeightKg(),
		CurrentVolumeM3:      load.VolumeM3(),
		WeightUtilizationPct: utilization.WeightPct(),
		VolumeUtilizationPct: utilization.VolumePct(),
		UtilizationPct:       utilization.DisplayPct(),
	}
	if zoneID := v.ZoneID(); zoneID != nil {
		if z, ok := zones[*zoneID]; ok {
			resp.ZoneName = z.Name()
		}
	}
	return resp
}
