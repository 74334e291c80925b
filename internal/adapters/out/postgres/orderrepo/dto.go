// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// volume_m3 is a cached copy of the value derived from the dimensions; it lets
// SQL sum loads without recomputing them.
type OrderDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName  string          `gorm:"not null;default:''"`
	WeightKg  decimal.Decimal `gorm:"type:numeric;not null"`
	LengthCm  decimal.Decimal `gorm:"type:numeric;not null"`
	WidthCm   decimal.Decimal `gorm:"type:numeric;not null"`
	HeightCm  decimal.Decimal `gorm:"type:numeric;not null"`
	VolumeM3  decimal.Decimal `gorm:"type:numeric;not null"`
	Pickup    PickupDTO       `gorm:"embedded;embeddedPrefix:pickup_"`
	Status    string          `gorm:"not null"`
	VehicleID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt time.Time       `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// PickupDTO is the embedded pickup point of the order.
type PickupDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lng float64 `gorm:"type:double precision"`
}

func fromDomain(o *order.Order) OrderDTO {
	var vehicleID *uuid.UUID
	if id := o.VehicleID(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	dims := o.Dimensions()
	return OrderDTO{
		ID:        o.ID().Bytes(),
		CompanyID: o.CompanyID().Bytes(),
		ItemName:  o.ItemName(),
		WeightKg:  o.WeightKg(),
		LengthCm:  dims.LengthCm(),
		WidthCm:   dims.WidthCm(),
		HeightCm:  dims.HeightCm(),
		VolumeM3:  o.VolumeM3(),
		Pickup: PickupDTO{
			Lat: o.Pickup().Lat(),
			Lng: o.Pickup().Lng(),
		},
		Status:    o.Status().String(),
		VehicleID: vehicleID,
		CreatedAt: o.CreatedAt(),
	}
}

// toDomain reconstructs the aggregate with RestoreOrder, which re-checks
// the consistency of status and vehicle reference.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	var vehicleID *kernel.UUID
	if dto.VehicleID != nil {
		vID, vehicleErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		vehicleID = &vID
	}

	dims, err := order.NewDimensions(dto.LengthCm, dto.WidthCm, dto.HeightCm)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewGeoPoint(dto.Pickup.Lat, dto.Pickup.Lng)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, companyID, dto.ItemName, dto.WeightKg, dims, pickup,
		status, vehicleID, dto.CreatedAt.UTC(),
	)
}
