package http

import (
	"fmt"

	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/generated/servers"
	"fleet/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func kernelID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	kid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return kid, nil
}

func optionalKernelID(param string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	kid, err := kernelID(param, *id)
	if err != nil {
		return nil, err
	}
	return &kid, nil
}

// quantity takes the shortest decimal representation of a JSON number,
// so 0.1 on the wire is exactly 0.1 in the domain.
func quantity(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// pointsFromBoundary converts [lat, lng] pairs into vertices. Malformed
// pairs and coordinates make the geometry invalid.
func pointsFromBoundary(boundary []servers.LatLng) ([]kernel.GeoPoint, error) {
	pairs := make([][2]float64, len(boundary))
	for i, pair := range boundary {
		if len(pair) != 2 {
			return nil, errs.NewInvalidGeometryError(fmt.Sprintf("vertex %d must be a [lat, lng] pair", i))
		}
		pairs[i] = [2]float64{pair[0], pair[1]}
	}

	polygon, err := zone.PolygonFromPairs(pairs)
	if err != nil {
		return nil, err
	}
	return polygon.Vertices(), nil
}

func boundaryFromPoints(points []kernel.GeoPoint) []servers.LatLng {
	boundary := make([]servers.LatLng, len(points))
	for i, p := range points {
		boundary[i] = servers.LatLng{p.Lat(), p.Lng()}
	}
	return boundary
}

func vehicleBody(v queries.VehicleResponse) servers.Vehicle {
	body := servers.Vehicle{
		Id:                   v.ID.Bytes(),
		VehicleNumber:        v.Number,
		MaxWeightKg:          v.MaxWeightKg.InexactFloat64(),
		MaxVolumeM3:          v.MaxVolumeM3.InexactFloat64(),
		CurrentWeightKg:      v.CurrentWeightKg.InexactFloat64(),
		CurrentVolumeM3:      v.CurrentVolumeM3.InexactFloat64(),
		WeightUtilizationPct: v.WeightUtilizationPct,
		VolumeUtilizationPct: v.VolumeUtilizationPct,
		UtilizationPct:       v.UtilizationPct,
	}
	if v.ZoneID != nil {
		zoneID := v.ZoneID.Bytes()
		body.ZoneId = &zoneID
	}
	if v.ZoneName != "" {
		name := v.ZoneName
		body.ZoneName = &name
	}
	return body
}

func vehicleList(vehicles []queries.VehicleResponse) []servers.Vehicle {
	response := make([]servers.Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = vehicleBody(v)
	}
	return response
}

func orderBody(o *order.Order) servers.Order {
	dims := o.Dimensions()
	body := servers.Order{
		Id:        o.ID().Bytes(),
		CompanyId: o.CompanyID().Bytes(),
		ItemName:  o.ItemName(),
		WeightKg:  o.WeightKg().InexactFloat64(),
		LengthCm:  dims.LengthCm().InexactFloat64(),
		WidthCm:   dims.WidthCm().InexactFloat64(),
		HeightCm:  dims.HeightCm().InexactFloat64(),
		VolumeM3:  o.VolumeM3().InexactFloat64(),
		Pickup:    servers.GeoPoint{Lat: o.Pickup().Lat(), Lng: o.Pickup().Lng()},
		Status:    servers.OrderStatus(o.Status().String()),
		CreatedAt: o.CreatedAt(),
	}
	if vehicleID := o.VehicleID(); vehicleID != nil {
		id := vehicleID.Bytes()
		body.AssignedVehicleId = &id
	}
	return body
}

func orderListItem(o queries.GetOrdersQueryResponse) servers.Order {
	body := servers.Order{
		Id:            o.ID.Bytes(),
		CompanyId:     o.CompanyID.Bytes(),
		ItemName:      o.ItemName,
		WeightKg:      o.WeightKg.InexactFloat64(),
		LengthCm:      o.LengthCm.InexactFloat64(),
		WidthCm:       o.WidthCm.InexactFloat64(),
		HeightCm:      o.HeightCm.InexactFloat64(),
		VolumeM3:      o.VolumeM3.InexactFloat64(),
		Pickup:        servers.GeoPoint{Lat: o.Pickup.Lat(), Lng: o.Pickup.Lng()},
		Status:        servers.OrderStatus(o.Status.String()),
		VehicleNumber: o.VehicleNumber,
		CreatedAt:     o.CreatedAt,
	}
	if o.VehicleID != nil {
		id := o.VehicleID.Bytes()
		body.AssignedVehicleId = &id
	}
	return body
}
