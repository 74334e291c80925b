package services_test

import (
	"testing"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/domain/model/zone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func point(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

// squareZone spans [0,10] x [0,10].
func squareZone(t *testing.T, name string) *zone.Zone {
	t.Helper()
	boundary, err := zone.NewPolygon([]kernel.GeoPoint{
		point(t, 0, 0), point(t, 0, 10), point(t, 10, 10), point(t, 10, 0),
	})
	require.NoError(t, err)
	z, err := zone.NewZone(name, boundary)
	require.NoError(t, err)
	return z
}

func newVehicle(t *testing.T, number, weight, volume string, zoneID *kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	c, err := vehicle.NewCapacity(dec(weight), dec(volume))
	require.NoError(t, err)
	v, err := vehicle.NewVehicle(number, c, zoneID)
	require.NoError(t, err)
	return v
}

// newOrder builds an order whose volume is volumeM3 using a 100 x 100 x h cm box.
func newOrder(t *testing.T, weight, volumeM3 string, pickup kernel.GeoPoint) *order.Order {
	t.Helper()
	height := dec(volumeM3).Mul(dec("100"))
	dims, err := order.NewDimensions(dec("100"), dec("100"), height)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "parcel", dec(weight), dims, pickup)
	require.NoError(t, err)
	return o
}
