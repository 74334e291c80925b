package commands_test

import (
	"context"
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/principal"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockZoneRepository struct{ mock.Mock }

func (m *MockZoneRepository) Add(ctx context.Context, z *zone.Zone) error {
	return m.Called(ctx, z).Error(0)
}

func (m *MockZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	z, _ := args.Get(0).(*zone.Zone)
	return z, args.Error(1)
}

func (m *MockZoneRepository) GetForShare(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	z, _ := args.Get(0).(*zone.Zone)
	return z, args.Error(1)
}

func (m *MockZoneRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	z, _ := args.Get(0).(*zone.Zone)
	return z, args.Error(1)
}

func (m *MockZoneRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*vehicle.Vehicle)
	return v, args.Error(1)
}

func (m *MockVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*vehicle.Vehicle)
	return v, args.Error(1)
}

func (m *MockVehicleRepository) CountByZone(ctx context.Context, zoneID kernel.UUID) (int64, error) {
	args := m.Called(ctx, zoneID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, vehicleID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct {
	mock.Mock

	zones    *MockZoneRepository
	vehicles *MockVehicleRepository
	orders   *MockOrderRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		zones:    new(MockZoneRepository),
		vehicles: new(MockVehicleRepository),
		orders:   new(MockOrderRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) ZoneRepository() ports.ZoneRepository {
	return m.zones
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	return m.vehicles
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.zones.AssertExpectations(t)
	m.vehicles.AssertExpectations(t)
	m.orders.AssertExpectations(t)
}

// expectTx sets up Begin and the deferred Rollback, plus Commit when commit is true.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil).Once()
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil).Once()
}

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW { return f() }

type zoneUoWFactory func() commands.ZoneUoW

func (f zoneUoWFactory) Create() commands.ZoneUoW { return f() }

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW { return f() }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func point(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func squareVertices(t *testing.T) []kernel.GeoPoint {
	t.Helper()
	return []kernel.GeoPoint{point(t, 0, 0), point(t, 0, 10), point(t, 10, 10), point(t, 10, 0)}
}

func squareZone(t *testing.T) *zone.Zone {
	t.Helper()
	boundary, err := zone.NewPolygon(squareVertices(t))
	require.NoError(t, err)
	z, err := zone.NewZone("Square", boundary)
	require.NoError(t, err)
	return z
}

func newVehicle(t *testing.T, weight, volume string, zoneID *kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	c, err := vehicle.NewCapacity(dec(weight), dec(volume))
	require.NoError(t, err)
	v, err := vehicle.NewVehicle("KA-"+kernel.NewUUID().String()[:8], c, zoneID)
	require.NoError(t, err)
	return v
}

func newOrder(t *testing.T, companyID kernel.UUID, weight string, pickup kernel.GeoPoint) *order.Order {
	t.Helper()
	dims, err := order.NewDimensions(dec("100"), dec("100"), dec("10"))
	require.NoError(t, err)
	o, err := order.NewOrder(companyID, "parcel", dec(weight), dims, pickup)
	require.NoError(t, err)
	return o
}

func client(t *testing.T, companyID kernel.UUID) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal("client", principal.RoleMSME, &companyID)
	require.NoError(t, err)
	return p
}

func admin(t *testing.T) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal("admin", principal.RoleSuperAdmin, nil)
	require.NoError(t, err)
	return p
}
