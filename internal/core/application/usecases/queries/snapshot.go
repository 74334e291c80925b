// Package queries contains read operations for retrieving system state.
// Every handler reads inside one REPEATABLE READ, READ ONLY transaction, so a
// response is built from a single consistent snapshot and never observes an
// assignment that is only partially applied. Readers never block writers.
package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/domain/model/zone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	selectZones = `
		SELECT id, name, boundary
		FROM zones
		ORDER BY name, id`

	selectVehicles = `
		SELECT id, vehicle_number, max_weight_kg, max_volume_m3, zone_id
		FROM vehicles`

	selectOrders = `
		SELECT
			id, company_id, item_name, weight_kg,
			length_cm, width_cm, height_cm,
			pickup_lat, pickup_lng, status, vehicle_id, created_at
		FROM orders`

	activeOrdersFilter = ` WHERE status IN ('ASSIGNED', 'SHIPPED')`
)

func readOnly(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
}

func loadZones(tx *gorm.DB) ([]*zone.Zone, error) {
	rows, err := tx.Raw(selectZones).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]*zone.Zone, 0)
	for rows.Next() {
		var (
			id       uuid.UUID
			name     string
			boundary []byte
		)
		if err = rows.Scan(&id, &name, &boundary); err != nil {
			return nil, err
		}

		zoneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		var pairs [][2]float64
		if err = json.Unmarshal(boundary, &pairs); err != nil {
			return nil, err
		}
		polygon, polyErr := zone.PolygonFromPairs(pairs)
		if polyErr != nil {
			return nil, polyErr
		}

		z, zoneErr := zone.RestoreZone(zoneID, name, polygon)
		if zoneErr != nil {
			return nil, zoneErr
		}
		zones = append(zones, z)
	}

	return zones, rows.Err()
}

func zonesByID(zones []*zone.Zone) map[kernel.UUID]*zone.Zone {
	byID := make(map[kernel.UUID]*zone.Zone, len(zones))
	for _, z := range zones {
		byID[z.ID()] = z
	}
	return byID
}

// loadVehicles runs selectVehicles followed by suffix, which may add a filter.
func loadVehicles(tx *gorm.DB, suffix string, args ...any) ([]*vehicle.Vehicle, error) {
	rows, err := tx.Raw(selectVehicles+suffix, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]*vehicle.Vehicle, 0)
	for rows.Next() {
		var (
			id                   uuid.UUID
			number               string
			maxWeight, maxVolume decimal.Decimal
			zoneID               uuid.NullUUID
		)
		if err = rows.Scan(&id, &number, &maxWeight, &maxVolume, &zoneID); err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		zoneRef, zoneErr := optionalUUID(zoneID)
		if zoneErr != nil {
			return nil, zoneErr
		}

		capacity, capErr := vehicle.NewCapacity(maxWeight, maxVolume)
		if capErr != nil {
			return nil, capErr
		}

		v, vErr := vehicle.RestoreVehicle(vehicleID, number, capacity, zoneRef)
		if vErr != nil {
			return nil, vErr
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

// loadOrders runs selectOrders followed by suffix, which may add a filter.
func loadOrders(tx *gorm.DB, suffix string, args ...any) ([]*order.Order, error) {
	rows, err := tx.Raw(selectOrders+suffix, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		var r orderRow
		if err = rows.Scan(
			&r.id, &r.companyID, &r.itemName, &r.weightKg,
			&r.lengthCm, &r.widthCm, &r.heightCm,
			&r.pickupLat, &r.pickupLng, &r.status, &r.vehicleID, &r.createdAt,
		); err != nil {
			return nil, err
		}

		o, orderErr := r.toDomain()
		if orderErr != nil {
			return nil, orderErr
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	out, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &out, nil
}
