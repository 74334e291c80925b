package queries

import (
	"context"

	"fleet/internal/core/domain/services"

	"gorm.io/gorm"
)

type GetAllVehiclesQueryHandler struct {
	db      *gorm.DB
	tracker services.CapacityTracker
}

func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{
		db:      db,
		tracker: services.NewCapacityTracker(),
	}
}

// Handle computes every load from the active orders of the same snapshot the
// vehicles were read from.
func (h GetAllVehiclesQueryHandler) Handle(ctx context.Context, query GetAllVehiclesQuery) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]VehicleResponse, 0)
	err := readOnly(ctx, h.db, func(tx *gorm.DB) error {
		zones, err := loadZones(tx)
		if err != nil {
			return err
		}
		fleet, err := loadVehicles(tx, ` ORDER BY vehicle_number, id`)
		if err != nil {
			return err
		}
		active, err := loadOrders(tx, activeOrdersFilter)
		if err != nil {
			return err
		}

		byZone := zonesByID(zones)
		loads := h.tracker.LoadsByVehicle(active)
		for _, v := range fleet {
			vehicles = append(vehicles, newVehicleResponse(v, byZone, loads[v.ID()]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return vehicles, nil
}
