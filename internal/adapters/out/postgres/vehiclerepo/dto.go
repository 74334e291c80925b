// Package vehiclerepo persists vehicles and their capacity limits.
package vehiclerepo

import (
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VehicleDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VehicleNumber string          `gorm:"not null;uniqueIndex:vehicles_vehicle_number_key"`
	MaxWeightKg   decimal.Decimal `gorm:"type:numeric;not null"`
	MaxVolumeM3   decimal.Decimal `gorm:"type:numeric;not null"`
	ZoneID        *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt     time.Time
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	var zoneID *uuid.UUID
	if id := v.ZoneID(); id != nil {
		raw := id.Bytes()
		zoneID = &raw
	}

	return VehicleDTO{
		ID:            v.ID().Bytes(),
		VehicleNumber: v.Number(),
		MaxWeightKg:   v.Capacity().MaxWeightKg(),
		MaxVolumeM3:   v.Capacity().MaxVolumeM3(),
		ZoneID:        zoneID,
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var zoneID *kernel.UUID
	if dto.ZoneID != nil {
		zID, zoneErr := kernel.UUIDFromBytes((*dto.ZoneID)[:])
		if zoneErr != nil {
			return nil, zoneErr
		}
		zoneID = &zID
	}

	capacity, err := vehicle.NewCapacity(dto.MaxWeightKg, dto.MaxVolumeM3)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.VehicleNumber, capacity, zoneID)
}
