package queries

import (
	"context"

	"fleet/internal/core/domain/services"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCompatibleVehiclesQueryHandler struct {
	db      *gorm.DB
	tracker services.CapacityTracker
	matcher services.CompatibilityMatcher
}

func NewGetCompatibleVehiclesQueryHandler(db *gorm.DB) GetCompatibleVehiclesQueryHandler {
	return GetCompatibleVehiclesQueryHandler{
		db:      db,
		tracker: services.NewCapacityTracker(),
		matcher: services.NewCompatibilityMatcher(),
	}
}

// Handle returns the compatible vehicles ordered by id. An empty slice is a
// regular answer; an unknown order is errs.ObjectNotFoundError. Orders that
// are no longer pending still get an answer.
func (h GetCompatibleVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetCompatibleVehiclesQuery,
) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]VehicleResponse, 0)
	err := readOnly(ctx, h.db, func(tx *gorm.DB) error {
		found, err := loadOrders(tx, ` WHERE id = ?`, query.OrderID().Bytes())
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return errs.NewObjectNotFoundError("order", query.OrderID())
		}
		o := found[0]

		zones, err := loadZones(tx)
		if err != nil {
			return err
		}
		fleet, err := loadVehicles(tx, ` WHERE zone_id IS NOT NULL`)
		if err != nil {
			return err
		}
		active, err := loadOrders(tx, activeOrdersFilter)
		if err != nil {
			return err
		}

		byZone := zonesByID(zones)
		loads := h.tracker.LoadsByVehicle(active)
		compatible, err := h.matcher.CompatibleVehicles(o, fleet, byZone, loads)
		if err != nil {
			return err
		}

		for _, v := range compatible {
			vehicles = append(vehicles, newVehicleResponse(v, byZone, loads[v.ID()]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return vehicles, nil
}
