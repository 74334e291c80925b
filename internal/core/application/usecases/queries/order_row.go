package queries

import (
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderRow struct {
	id                          uuid.UUID
	companyID                   uuid.UUID
	itemName                    string
	weightKg                    decimal.Decimal
	lengthCm, widthCm, heightCm decimal.Decimal
	pickupLat, pickupLng        float64
	status                      string
	vehicleID                   uuid.NullUUID
	createdAt                   time.Time
}

func (r orderRow) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(r.id[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(r.companyID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := optionalUUID(r.vehicleID)
	if err != nil {
		return nil, err
	}

	dims, err := order.NewDimensions(r.lengthCm, r.widthCm, r.heightCm)
	if err != nil {
		return nil, err
	}
	pickup, err := kernel.NewGeoPoint(r.pickupLat, r.pickupLng)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(r.status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, companyID, r.itemName, r.weightKg, dims, pickup, status, vehicleID, r.createdAt.UTC())
}
