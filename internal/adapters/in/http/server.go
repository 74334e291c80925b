package http

import (
	"context"
	"log/slog"
	"net/http"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CommandHandler executes a command that produces no result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler executes a command or query and returns its result.
type ResultHandler[I, R any] interface {
	Handle(ctx context.Context, in I) (R, error)
}

// UseCases groups the application handlers the HTTP server delegates to.
type UseCases struct {
	// Command handlers
	CreateZone    ResultHandler[commands.CreateZoneCommand, *zone.Zone]
	DeleteZone    CommandHandler[commands.DeleteZoneCommand]
	CreateVehicle ResultHandler[commands.CreateVehicleCommand, *vehicle.Vehicle]
	DeleteVehicle CommandHandler[commands.DeleteVehicleCommand]
	CreateOrder   ResultHandler[commands.CreateOrderCommand, *order.Order]
	AssignOrder   CommandHandler[commands.AssignOrderCommand]
	UnassignOrder CommandHandler[commands.UnassignOrderCommand]
	CancelOrder   CommandHandler[commands.CancelOrderCommand]
	ShipOrder     CommandHandler[commands.MarkOrderShippedCommand]

	// Query handlers
	GetAllZones           ResultHandler[queries.GetAllZonesQuery, []queries.GetAllZonesQueryResponse]
	GetAllVehicles        ResultHandler[queries.GetAllVehiclesQuery, []queries.VehicleResponse]
	GetVehicleLoad        ResultHandler[queries.GetVehicleLoadQuery, queries.VehicleResponse]
	GetOrders             ResultHandler[queries.GetOrdersQuery, []queries.GetOrdersQueryResponse]
	GetCompatibleVehicles ResultHandler[queries.GetCompatibleVehiclesQuery, []queries.VehicleResponse]
}

// Server implements servers.ServerInterface on top of the application use cases.
// Every handler runs behind the authentication and request validation
// middleware, so a principal is always present in the echo context.
type Server struct {
	useCases UseCases
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(useCases UseCases, logger *slog.Logger) *Server {
	return &Server{
		useCases: useCases,
		logger:   logger.With("component", "http_server"),
	}
}

// ListZones handles GET /api/v1/zones.
func (s *Server) ListZones(ctx echo.Context) error {
	zones, err := s.useCases.GetAllZones.Handle(ctx.Request().Context(), queries.NewGetAllZonesQuery())
	if err != nil {
		return s.problem(ctx, err)
	}

	response := make([]servers.Zone, len(zones))
	for i, z := range zones {
		response[i] = servers.Zone{
			Id:       z.ID.Bytes(),
			Name:     z.Name,
			Boundary: boundaryFromPoints(z.Boundary),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateZone handles POST /api/v1/zones.
func (s *Server) CreateZone(ctx echo.Context) error {
	if _, err := requireAdmin(ctx, "create zone"); err != nil {
		return s.problem(ctx, err)
	}

	var body servers.NewZone
	if err := ctx.Bind(&body); err != nil {
		return s.problem(ctx, err)
	}

	boundary, err := pointsFromBoundary(body.Boundary)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewCreateZoneCommand(body.Name, boundary)
	if err != nil {
		return s.problem(ctx, err)
	}

	created, err := s.useCases.CreateZone.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Zone{
		Id:       created.ID().Bytes(),
		Name:     created.Name(),
		Boundary: boundaryFromPoints(created.Boundary().Vertices()),
	})
}

// DeleteZone handles DELETE /api/v1/zones/{zoneId}.
func (s *Server) DeleteZone(ctx echo.Context, zoneId servers.ZoneId) error {
	if _, err := requireAdmin(ctx, "delete zone"); err != nil {
		return s.problem(ctx, err)
	}

	id, err := kernelID("zone_id", zoneId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewDeleteZoneCommand(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	if err = s.useCases.DeleteZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListVehicles handles GET /api/v1/vehicles.
func (s *Server) ListVehicles(ctx echo.Context) error {
	vehicles, err := s.useCases.GetAllVehicles.Handle(ctx.Request().Context(), queries.NewGetAllVehiclesQuery())
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleList(vehicles))
}

// CreateVehicle handles POST /api/v1/vehicles. The response carries the
// vehicle as the load endpoint would report it.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	if _, err := requireAdmin(ctx, "create vehicle"); err != nil {
		return s.problem(ctx, err)
	}

	var body servers.NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return s.problem(ctx, err)
	}

	zoneID, err := optionalKernelID("zone_id", body.ZoneId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewCreateVehicleCommand(
		body.VehicleNumber,
		quantity(body.MaxWeightKg),
		quantity(body.MaxVolumeM3),
		zoneID,
	)
	if err != nil {
		return s.problem(ctx, err)
	}

	created, err := s.useCases.CreateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	query, err := queries.NewGetVehicleLoadQuery(created.ID())
	if err != nil {
		return s.problem(ctx, err)
	}

	loaded, err := s.useCases.GetVehicleLoad.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, vehicleBody(loaded))
}

// DeleteVehicle handles DELETE /api/v1/vehicles/{vehicleId}.
func (s *Server) DeleteVehicle(ctx echo.Context, vehicleId servers.VehicleId) error {
	if _, err := requireAdmin(ctx, "delete vehicle"); err != nil {
		return s.problem(ctx, err)
	}

	id, err := kernelID("vehicle_id", vehicleId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	if err = s.useCases.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetVehicleLoad handles GET /api/v1/vehicles/{vehicleId}/load.
func (s *Server) GetVehicleLoad(ctx echo.Context, vehicleId servers.VehicleId) error {
	id, err := kernelID("vehicle_id", vehicleId)
	if err != nil {
		return s.problem(ctx, err)
	}

	query, err := queries.NewGetVehicleLoadQuery(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	loaded, err := s.useCases.GetVehicleLoad.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleBody(loaded))
}

// ListOrders handles GET /api/v1/orders. Clients only see their own company's orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	caller, err := principalFrom(ctx)
	if err != nil {
		return s.problem(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(caller)
	if err != nil {
		return s.problem(ctx, err)
	}

	orders, err := s.useCases.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderListItem(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. The order belongs to the caller's company.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := principalFrom(ctx)
	if err != nil {
		return s.problem(ctx, err)
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return s.problem(ctx, err)
	}

	var itemName string
	if body.ItemName != nil {
		itemName = *body.ItemName
	}

	cmd, err := commands.NewCreateOrderCommand(
		caller,
		itemName,
		quantity(body.WeightKg),
		quantity(body.LengthCm),
		quantity(body.WidthCm),
		quantity(body.HeightCm),
		body.Pickup.Lat,
		body.Pickup.Lng,
	)
	if err != nil {
		return s.problem(ctx, err)
	}

	created, err := s.useCases.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderBody(created))
}

// GetCompatibleVehicles handles GET /api/v1/orders/{orderId}/compatible-vehicles.
func (s *Server) GetCompatibleVehicles(ctx echo.Context, orderId servers.OrderId) error {
	if _, err := requireAdmin(ctx, "list compatible vehicles"); err != nil {
		return s.problem(ctx, err)
	}

	id, err := kernelID("order_id", orderId)
	if err != nil {
		return s.problem(ctx, err)
	}

	query, err := queries.NewGetCompatibleVehiclesQuery(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	vehicles, err := s.useCases.GetCompatibleVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleList(vehicles))
}

// AssignOrder handles POST /api/v1/orders/{orderId}/assign.
func (s *Server) AssignOrder(ctx echo.Context, orderId servers.OrderId) error {
	if _, err := requireAdmin(ctx, "assign order"); err != nil {
		return s.problem(ctx, err)
	}

	var body servers.AssignOrder
	if err := ctx.Bind(&body); err != nil {
		return s.problem(ctx, err)
	}

	id, err := kernelID("order_id", orderId)
	if err != nil {
		return s.problem(ctx, err)
	}
	vehicleID, err := kernelID("vehicle_id", body.VehicleId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(id, vehicleID)
	if err != nil {
		return s.problem(ctx, err)
	}

	if err = s.useCases.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignOrder handles POST /api/v1/orders/{orderId}/unassign.
func (s *Server) UnassignOrder(ctx echo.Context, orderId servers.OrderId) error {
	if _, err := requireAdmin(ctx, "unassign order"); err != nil {
		return s.problem(ctx, err)
	}

	id, err := kernelID("order_id", orderId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewUnassignOrderCommand(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	if err = s.useCases.UnassignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel. Ownership is
// checked by the use case.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	caller, err := principalFrom(ctx)
	if err != nil {
		return s.problem(ctx, err)
	}

	id, err := kernelID("order_id", orderId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(caller, id)
	if err != nil {
		return s.problem(ctx, err)
	}

	if err = s.useCases.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/{orderId}/ship.
func (s *Server) ShipOrder(ctx echo.Context, orderId servers.OrderId) error {
	if _, err := requireAdmin(ctx, "ship order"); err != nil {
		return s.problem(ctx, err)
	}

	id, err := kernelID("order_id", orderId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewMarkOrderShippedCommand(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	if err = s.useCases.ShipOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
