package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	httpin "fleet/internal/adapters/in/http"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/generated/servers"
	"fleet/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const square = `[[0,0],[0,10],[10,10],[10,0]]`

func decodeError(t *testing.T, body []byte) servers.Error {
	t.Helper()
	var e servers.Error
	require.NoError(t, json.Unmarshal(body, &e))
	return e
}

func TestHealth(t *testing.T) {
	c := newAPIClient(t, httpin.UseCases{})

	rec := c.get("/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestAuthentication(t *testing.T) {
	c := newAPIClient(t, httpin.UseCases{})

	t.Run("missing token", func(t *testing.T) {
		rec := c.get("/api/v1/zones", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthorized", decodeError(t, rec.Body.Bytes()).Kind)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := httpin.NewTokenAuthenticator("another-secret")
		require.NoError(t, err)
		token := (&apiClient{t: t, auth: other}).adminToken()

		rec := c.get("/api/v1/zones", token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListZones(t *testing.T) {
	getAll := &mockResult[queries.GetAllZonesQuery, []queries.GetAllZonesQueryResponse]{}
	c := newAPIClient(t, httpin.UseCases{GetAllZones: getAll})

	z, err := zone.PolygonFromPairs([][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}})
	require.NoError(t, err)
	id := kernel.NewUUID()
	getAll.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetAllZonesQueryResponse{
		{ID: id, Name: "North", Boundary: z.Vertices()},
	}, nil)

	rec := c.get("/api/v1/zones", c.clientToken(kernel.NewUUID()))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []servers.Zone
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, id.String(), body[0].Id.String())
	assert.Equal(t, "North", body[0].Name)
	assert.Equal(t, []servers.LatLng{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, body[0].Boundary)
}

func TestCreateZone(t *testing.T) {
	t.Run("admin creates a zone", func(t *testing.T) {
		create := &mockResult[commands.CreateZoneCommand, *zone.Zone]{}
		c := newAPIClient(t, httpin.UseCases{CreateZone: create})

		create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateZoneCommand) bool {
			return cmd.Name() == "North" && len(cmd.Boundary().Vertices()) == 4
		})).Return(func() *zone.Zone {
			p, err := zone.PolygonFromPairs([][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}})
			require.NoError(t, err)
			z, err := zone.NewZone("North", p)
			require.NoError(t, err)
			return z
		}(), nil)

		rec := c.post("/api/v1/zones", c.adminToken(), `{"name":"North","boundary":`+square+`}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var body servers.Zone
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "North", body.Name)
		assert.Len(t, body.Boundary, 4)
		create.AssertExpectations(t)
	})

	t.Run("client is forbidden", func(t *testing.T) {
		create := &mockResult[commands.CreateZoneCommand, *zone.Zone]{}
		c := newAPIClient(t, httpin.UseCases{CreateZone: create})

		rec := c.post("/api/v1/zones", c.clientToken(kernel.NewUUID()), `{"name":"North","boundary":`+square+`}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Forbidden", decodeError(t, rec.Body.Bytes()).Kind)
		create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("self-intersecting boundary", func(t *testing.T) {
		create := &mockResult[commands.CreateZoneCommand, *zone.Zone]{}
		c := newAPIClient(t, httpin.UseCases{CreateZone: create})

		rec := c.post("/api/v1/zones", c.adminToken(), `{"name":"Bowtie","boundary":[[0,0],[10,10],[10,0],[0,10]]}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "InvalidGeometry", decodeError(t, rec.Body.Bytes()).Kind)
		create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("vertex that is not a pair", func(t *testing.T) {
		for name, boundary := range map[string]string{
			"with altitude": `[[0,0,1],[0,10],[10,10],[10,0]]`,
			"latitude only": `[[0],[0,10],[10,10],[10,0]]`,
			"empty vertex":  `[[],[0,10],[10,10],[10,0]]`,
		} {
			t.Run(name, func(t *testing.T) {
				create := &mockResult[commands.CreateZoneCommand, *zone.Zone]{}
				c := newAPIClient(t, httpin.UseCases{CreateZone: create})

				rec := c.post("/api/v1/zones", c.adminToken(), `{"name":"North","boundary":`+boundary+`}`)

				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
				assert.Equal(t, "InvalidGeometry", decodeError(t, rec.Body.Bytes()).Kind)
				create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("request without a name fails validation", func(t *testing.T) {
		c := newAPIClient(t, httpin.UseCases{})

		rec := c.post("/api/v1/zones", c.adminToken(), `{"boundary":`+square+`}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec.Body.Bytes())
		assert.Equal(t, "Invalid", body.Kind)
		assert.Contains(t, body.Message, `property "name" is missing`)
		assert.NotContains(t, body.Message, "Schema:")
		assert.NotContains(t, body.Message, "Value:")
	})

	t.Run("wrong type reports the field", func(t *testing.T) {
		c := newAPIClient(t, httpin.UseCases{})

		rec := c.post("/api/v1/zones", c.adminToken(), `{"name":"North","boundary":[["a","b"],[0,10],[10,10],[10,0]]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec.Body.Bytes())
		assert.Contains(t, body.Message, "/boundary/0/0")
		assert.NotContains(t, body.Message, "\n")
		assert.NotContains(t, body.Message, "Schema:")
	})
}

func TestDeleteZone_Conflict(t *testing.T) {
	del := &mockCommand[commands.DeleteZoneCommand]{}
	c := newAPIClient(t, httpin.UseCases{DeleteZone: del})
	id := kernel.NewUUID()

	del.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteZoneCommand) bool {
		return cmd.ZoneID().IsEqual(id)
	})).Return(errs.NewConflictError("zone", id, "vehicles still reference it"))

	rec := c.do(http.MethodDelete, "/api/v1/zones/"+id.String(), c.adminToken(), "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Conflict", decodeError(t, rec.Body.Bytes()).Kind)
}

func TestCreateVehicle(t *testing.T) {
	create := &mockResult[commands.CreateVehicleCommand, *vehicle.Vehicle]{}
	load := &mockResult[queries.GetVehicleLoadQuery, queries.VehicleResponse]{}
	c := newAPIClient(t, httpin.UseCases{CreateVehicle: create, GetVehicleLoad: load})

	capacity, err := vehicle.NewCapacity(decimal.NewFromInt(100), decimal.NewFromInt(1))
	require.NoError(t, err)
	created, err := vehicle.NewVehicle("KA-100", capacity, nil)
	require.NoError(t, err)

	create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateVehicleCommand) bool {
		return cmd.Number() == "KA-100" &&
			cmd.Capacity().MaxVolumeM3().Equal(decimal.RequireFromString("1.5")) &&
			cmd.ZoneID() == nil
	})).Return(created, nil)
	load.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetVehicleLoadQuery) bool {
		return q.VehicleID().IsEqual(created.ID())
	})).Return(queries.VehicleResponse{
		ID:          created.ID(),
		Number:      "KA-100",
		MaxWeightKg: decimal.NewFromInt(100),
		MaxVolumeM3: decimal.RequireFromString("1.5"),
	}, nil)

	rec := c.post("/api/v1/vehicles", c.adminToken(),
		`{"vehicle_number":"KA-100","max_weight_kg":100,"max_volume_m3":1.5}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body servers.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "KA-100", body.VehicleNumber)
	assert.InDelta(t, 1.5, body.MaxVolumeM3, 1e-9)
	assert.Nil(t, body.ZoneId)
	assert.Nil(t, body.ZoneName)
}

func TestGetVehicleLoad(t *testing.T) {
	load := &mockResult[queries.GetVehicleLoadQuery, queries.VehicleResponse]{}
	c := newAPIClient(t, httpin.UseCases{GetVehicleLoad: load})

	t.Run("reports load and utilization", func(t *testing.T) {
		id, zoneID := kernel.NewUUID(), kernel.NewUUID()
		load.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetVehicleLoadQuery) bool {
			return q.VehicleID().IsEqual(id)
		})).Return(queries.VehicleResponse{
			ID:                   id,
			Number:               "KA-100",
			MaxWeightKg:          decimal.NewFromInt(100),
			MaxVolumeM3:          decimal.NewFromInt(1),
			ZoneID:               &zoneID,
			ZoneName:             "North",
			CurrentWeightKg:      decimal.NewFromInt(60),
			CurrentVolumeM3:      decimal.RequireFromString("0.2"),
			WeightUtilizationPct: 60,
			VolumeUtilizationPct: 20,
			UtilizationPct:       60,
		}, nil).Once()

		rec := c.get("/api/v1/vehicles/"+id.String()+"/load", c.clientToken(kernel.NewUUID()))

		require.Equal(t, http.StatusOK, rec.Code)
		var body servers.Vehicle
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.InDelta(t, 60, body.CurrentWeightKg, 1e-9)
		assert.InDelta(t, 0.2, body.CurrentVolumeM3, 1e-9)
		assert.InDelta(t, 60, body.UtilizationPct, 1e-9)
		require.NotNil(t, body.ZoneName)
		assert.Equal(t, "North", *body.ZoneName)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		id := kernel.NewUUID()
		load.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetVehicleLoadQuery) bool {
			return q.VehicleID().IsEqual(id)
		})).Return(nil, errs.NewObjectNotFoundError("vehicle", id)).Once()

		rec := c.get("/api/v1/vehicles/"+id.String()+"/load", c.adminToken())

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NotFound", decodeError(t, rec.Body.Bytes()).Kind)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := c.get("/api/v1/vehicles/not-a-uuid/load", c.adminToken())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateOrder(t *testing.T) {
	create := &mockResult[commands.CreateOrderCommand, *order.Order]{}
	c := newAPIClient(t, httpin.UseCases{CreateOrder: create})
	companyID := kernel.NewUUID()

	dims, err := order.NewDimensions(decimal.NewFromInt(50), decimal.NewFromInt(40), decimal.NewFromInt(20))
	require.NoError(t, err)
	pickup, err := kernel.NewGeoPoint(5, 5)
	require.NoError(t, err)
	created, err := order.NewOrder(companyID, "", decimal.NewFromInt(60), dims, pickup)
	require.NoError(t, err)

	create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.CompanyID().IsEqual(companyID) && cmd.WeightKg().Equal(decimal.NewFromInt(60))
	})).Return(created, nil)

	rec := c.post("/api/v1/orders", c.clientToken(companyID),
		`{"weight_kg":60,"length_cm":50,"width_cm":40,"height_cm":20,"pickup":{"lat":5,"lng":5}}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, servers.PENDING, body.Status)
	assert.Equal(t, companyID.String(), body.CompanyId.String())
	assert.InDelta(t, 0.04, body.VolumeM3, 1e-9)
	assert.Nil(t, body.AssignedVehicleId)
}

func TestListOrders_PassesCaller(t *testing.T) {
	list := &mockResult[queries.GetOrdersQuery, []queries.GetOrdersQueryResponse]{}
	c := newAPIClient(t, httpin.UseCases{GetOrders: list})
	companyID := kernel.NewUUID()
	vehicleNumber := "KA-100"
	vehicleID := kernel.NewUUID()
	pickup, err := kernel.NewGeoPoint(5, 5)
	require.NoError(t, err)

	list.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrdersQuery) bool {
		own, ok := q.Caller().CompanyID()
		return ok && own.IsEqual(companyID) && !q.Caller().IsAdmin()
	})).Return([]queries.GetOrdersQueryResponse{{
		ID:            kernel.NewUUID(),
		CompanyID:     companyID,
		WeightKg:      decimal.NewFromInt(60),
		LengthCm:      decimal.NewFromInt(50),
		WidthCm:       decimal.NewFromInt(40),
		HeightCm:      decimal.NewFromInt(20),
		VolumeM3:      decimal.RequireFromString("0.04"),
		Pickup:        pickup,
		Status:        order.Assigned,
		VehicleID:     &vehicleID,
		VehicleNumber: &vehicleNumber,
	}}, nil)

	rec := c.get("/api/v1/orders", c.clientToken(companyID))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, servers.ASSIGNED, body[0].Status)
	require.NotNil(t, body[0].VehicleNumber)
	assert.Equal(t, "KA-100", *body[0].VehicleNumber)
	require.NotNil(t, body[0].AssignedVehicleId)
	assert.Equal(t, vehicleID.String(), body[0].AssignedVehicleId.String())
	list.AssertExpectations(t)
}

func TestAssignOrder(t *testing.T) {
	tests := []struct {
		name       string
		handleErr  error
		wantStatus int
		wantKind   string
	}{
		{name: "assigned", wantStatus: http.StatusNoContent},
		{
			name:       "vehicle is full",
			handleErr:  errs.NewCapacityExceededError("KA-100", "weight limit"),
			wantStatus: http.StatusConflict,
			wantKind:   "CapacityExceeded",
		},
		{
			name:       "order already assigned",
			handleErr:  errs.NewInvalidStateError("order", "ASSIGNED", "assign"),
			wantStatus: http.StatusConflict,
			wantKind:   "InvalidState",
		},
		{
			name:       "unknown vehicle",
			handleErr:  errs.NewObjectNotFoundError("vehicle", "x"),
			wantStatus: http.StatusNotFound,
			wantKind:   "NotFound",
		},
		{
			name:       "store failure",
			handleErr:  errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   "Internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assign := &mockCommand[commands.AssignOrderCommand]{}
			c := newAPIClient(t, httpin.UseCases{AssignOrder: assign})
			orderID, vehicleID := kernel.NewUUID(), kernel.NewUUID()

			assign.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AssignOrderCommand) bool {
				return cmd.OrderID().IsEqual(orderID) && cmd.VehicleID().IsEqual(vehicleID)
			})).Return(tt.handleErr)

			rec := c.post("/api/v1/orders/"+orderID.String()+"/assign", c.adminToken(),
				`{"vehicle_id":"`+vehicleID.String()+`"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantKind != "" {
				e := decodeError(t, rec.Body.Bytes())
				assert.Equal(t, tt.wantKind, e.Kind)
				assert.Equal(t, tt.wantStatus, e.Code)
			}
			assign.AssertExpectations(t)
		})
	}

	t.Run("client is forbidden", func(t *testing.T) {
		assign := &mockCommand[commands.AssignOrderCommand]{}
		c := newAPIClient(t, httpin.UseCases{AssignOrder: assign})

		rec := c.post("/api/v1/orders/"+kernel.NewUUID().String()+"/assign", c.clientToken(kernel.NewUUID()),
			`{"vehicle_id":"`+kernel.NewUUID().String()+`"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assign.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("missing vehicle id fails validation", func(t *testing.T) {
		c := newAPIClient(t, httpin.UseCases{})

		rec := c.post("/api/v1/orders/"+kernel.NewUUID().String()+"/assign", c.adminToken(), `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestInternalErrorsHideDetails(t *testing.T) {
	unassign := &mockCommand[commands.UnassignOrderCommand]{}
	c := newAPIClient(t, httpin.UseCases{UnassignOrder: unassign})
	unassign.On("Handle", mock.Anything, mock.Anything).Return(errors.New("pq: password authentication failed"))

	rec := c.post("/api/v1/orders/"+kernel.NewUUID().String()+"/unassign", c.adminToken(), "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestCancelOrder_PassesCaller(t *testing.T) {
	cancel := &mockCommand[commands.CancelOrderCommand]{}
	c := newAPIClient(t, httpin.UseCases{CancelOrder: cancel})
	companyID, orderID := kernel.NewUUID(), kernel.NewUUID()

	cancel.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrderCommand) bool {
		own, ok := cmd.Caller().CompanyID()
		return ok && own.IsEqual(companyID) && cmd.OrderID().IsEqual(orderID)
	})).Return(errs.NewForbiddenError("cancel order of another company"))

	rec := c.post("/api/v1/orders/"+orderID.String()+"/cancel", c.clientToken(companyID), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", decodeError(t, rec.Body.Bytes()).Kind)
	cancel.AssertExpectations(t)
}

func TestShipOrder(t *testing.T) {
	ship := &mockCommand[commands.MarkOrderShippedCommand]{}
	c := newAPIClient(t, httpin.UseCases{ShipOrder: ship})
	orderID := kernel.NewUUID()
	ship.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MarkOrderShippedCommand) bool {
		return cmd.OrderID().IsEqual(orderID)
	})).Return(nil)

	rec := c.post("/api/v1/orders/"+orderID.String()+"/ship", c.adminToken(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	ship.AssertExpectations(t)
}

func TestGetCompatibleVehicles_EmptyList(t *testing.T) {
	compatible := &mockResult[queries.GetCompatibleVehiclesQuery, []queries.VehicleResponse]{}
	c := newAPIClient(t, httpin.UseCases{GetCompatibleVehicles: compatible})
	compatible.On("Handle", mock.Anything, mock.Anything).Return([]queries.VehicleResponse{}, nil)

	rec := c.get("/api/v1/orders/"+kernel.NewUUID().String()+"/compatible-vehicles", c.adminToken())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
