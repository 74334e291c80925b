package cmd

import (
	"fmt"
	"log/slog"

	httpin "fleet/internal/adapters/in/http"
	"fleet/internal/adapters/out/eventlog"
	"fleet/internal/adapters/out/postgres"
	"fleet/internal/adapters/out/rabbitmq"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/ports"
	"fleet/internal/jobs"

	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		logger:     logger,
	}
}

// NewEventPublisher connects to RabbitMQ when a URL is configured and falls
// back to logging the events otherwise. The returned function releases the
// connection.
func NewEventPublisher(config Config, logger *slog.Logger) (ports.EventPublisher, func() error, error) {
	if config.RabbitMQURL == "" {
		logger.Info("RABBITMQ_URL is not set, order events are only logged")
		return eventlog.NewPublisher(logger), func() error { return nil }, nil
	}

	conn, err := amqp.Dial(config.RabbitMQURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	publisher, err := rabbitmq.NewOrderEventPublisher(conn, config.RabbitMQExchange)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return publisher, conn.Close, nil
}

func (c *CompositionRoot) zoneUoWFactory() commands.ZoneUoWFactory {
	return FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	return commands.NewCreateZoneCommandHandler(c.zoneUoWFactory())
}

func (c *CompositionRoot) CreateDeleteZoneCommandHandler() commands.DeleteZoneCommandHandler {
	return commands.NewDeleteZoneCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	return commands.NewCreateVehicleCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	return commands.NewDeleteVehicleCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateUnassignOrderCommandHandler() commands.UnassignOrderCommandHandler {
	return commands.NewUnassignOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderShippedCommandHandler() commands.MarkOrderShippedCommandHandler {
	return commands.NewMarkOrderShippedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetAllZonesQueryHandler() queries.GetAllZonesQueryHandler {
	return queries.NewGetAllZonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehicleLoadQueryHandler() queries.GetVehicleLoadQueryHandler {
	return queries.NewGetVehicleLoadQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCompatibleVehiclesQueryHandler() queries.GetCompatibleVehiclesQueryHandler {
	return queries.NewGetCompatibleVehiclesQueryHandler(c.gormDB)
}

// UseCases collects every handler the HTTP server exposes.
func (c *CompositionRoot) UseCases() httpin.UseCases {
	return httpin.UseCases{
		CreateZone:    c.CreateCreateZoneCommandHandler(),
		DeleteZone:    c.CreateDeleteZoneCommandHandler(),
		CreateVehicle: c.CreateCreateVehicleCommandHandler(),
		DeleteVehicle: c.CreateDeleteVehicleCommandHandler(),
		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		AssignOrder:   c.CreateAssignOrderCommandHandler(),
		UnassignOrder: c.CreateUnassignOrderCommandHandler(),
		CancelOrder:   c.CreateCancelOrderCommandHandler(),
		ShipOrder:     c.CreateMarkOrderShippedCommandHandler(),

		GetAllZones:           c.CreateGetAllZonesQueryHandler(),
		GetAllVehicles:        c.CreateGetAllVehiclesQueryHandler(),
		GetVehicleLoad:        c.CreateGetVehicleLoadQueryHandler(),
		GetOrders:             c.CreateGetOrdersQueryHandler(),
		GetCompatibleVehicles: c.CreateGetCompatibleVehiclesQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewCapacityAuditJob(c.CreateGetAllVehiclesQueryHandler(), c.config.CapacityAuditSchedule, c.logger),
	)
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
