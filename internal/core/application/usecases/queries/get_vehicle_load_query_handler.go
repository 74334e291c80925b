package queries

import (
	"context"

	"fleet/internal/core/domain/services"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetVehicleLoadQueryHandler struct {
	db      *gorm.DB
	tracker services.CapacityTracker
}

func NewGetVehicleLoadQueryHandler(db *gorm.DB) GetVehicleLoadQueryHandler {
	return GetVehicleLoadQueryHandler{
		db:      db,
		tracker: services.NewCapacityTracker(),
	}
}

// Handle returns errs.ObjectNotFoundError for an unknown vehicle.
func (h GetVehicleLoadQueryHandler) Handle(ctx context.Context, query GetVehicleLoadQuery) (VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return VehicleResponse{}, err
	}

	var resp VehicleResponse
	err := readOnly(ctx, h.db, func(tx *gorm.DB) error {
		id := query.VehicleID().Bytes()
		found, err := loadVehicles(tx, ` WHERE id = ?`, id)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return errs.NewObjectNotFoundError("vehicle", query.VehicleID())
		}
		v := found[0]

		active, err := loadOrders(tx, activeOrdersFilter+` AND vehicle_id = ?`, id)
		if err != nil {
			return err
		}
		zones, err := loadZones(tx)
		if err != nil {
			return err
		}

		resp = newVehicleResponse(v, zonesByID(zones), h.tracker.LoadOf(v.ID(), active))
		return nil
	})
	if err != nil {
		return VehicleResponse{}, err
	}

	return resp, nil
}
