package cmd

import (
	"log/slog"

	httpin "manufacturing/internal/adapters/in/http"
	"manufacturing/internal/adapters/in/ws"
	kafkaout "manufacturing/internal/adapters/out/kafka"
	"manufacturing/internal/adapters/out/postgres"
	"manufacturing/internal/adapters/out/postgres/outboxrepo"
	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/jobs"
	"manufacturing/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	ledger     services.StockLedger
	clock      clock.Clock
	logger     *slog.Logger

	hub   *ws.Hub
	kafka *kafkaout.Publisher
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		cfg:    cfg,
		gormDB: gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB,
			postgres.WithLockTimeout(cfg.LockTimeout()),
			postgres.WithOrderEventsTopic(cfg.KafkaOrderChangedTopic),
		),
		ledger: services.NewStockLedger(),
		clock:  clock.System{},
		logger: logger,
		hub:    ws.NewHub(logger),
	}
	if brokers := cfg.KafkaBrokers(); len(brokers) > 0 {
		root.kafka = kafkaout.NewPublisher(brokers...)
	}
	return root
}

func (c *CompositionRoot) stockUoWFactory() commands.StockUoWFactory {
	return FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bomUoWFactory() commands.BomUoWFactory {
	return FuncBomUoWFactory(func() commands.BomUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workCenterUoWFactory() commands.WorkCenterUoWFactory {
	return FuncWorkCenterUoWFactory(func() commands.WorkCenterUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) unitOfWorkFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateStockItemCommandHandler() commands.CreateStockItemCommandHandler {
	return commands.NewCreateStockItemCommandHandler(c.stockUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteStockItemCommandHandler() commands.DeleteStockItemCommandHandler {
	return commands.NewDeleteStockItemCommandHandler(c.stockUoWFactory())
}

func (c *CompositionRoot) CreateReplenishStockCommandHandler() commands.ReplenishStockCommandHandler {
	return commands.NewReplenishStockCommandHandler(c.stockUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateBomCommandHandler() commands.CreateBomCommandHandler {
	return commands.NewCreateBomCommandHandler(c.bomUoWFactory())
}

func (c *CompositionRoot) CreateReviseBomCommandHandler() commands.ReviseBomCommandHandler {
	return commands.NewReviseBomCommandHandler(c.bomUoWFactory())
}

func (c *CompositionRoot) CreateDeleteBomCommandHandler() commands.DeleteBomCommandHandler {
	return commands.NewDeleteBomCommandHandler(c.bomUoWFactory())
}

func (c *CompositionRoot) CreateCreateWorkCenterCommandHandler() commands.CreateWorkCenterCommandHandler {
	return commands.NewCreateWorkCenterCommandHandler(c.workCenterUoWFactory())
}

func (c *CompositionRoot) CreateDeleteWorkCenterCommandHandler() commands.DeleteWorkCenterCommandHandler {
	return commands.NewDeleteWorkCenterCommandHandler(c.workCenterUoWFactory())
}

func (c *CompositionRoot) CreateRecordDowntimeCommandHandler() commands.RecordDowntimeCommandHandler {
	return commands.NewRecordDowntimeCommandHandler(c.workCenterUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.unitOfWorkFactory(), c.ledger, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() commands.UpdateOrderDetailsCommandHandler {
	return commands.NewUpdateOrderDetailsCommandHandler(c.unitOfWorkFactory(), c.clock)
}

func (c *CompositionRoot) CreateRefreshOrderStatusCommandHandler() commands.RefreshOrderStatusCommandHandler {
	return commands.NewRefreshOrderStatusCommandHandler(c.unitOfWorkFactory(), c.ledger, c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.unitOfWorkFactory(), c.ledger, c.clock)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.unitOfWorkFactory(), c.ledger, c.clock)
}

func (c *CompositionRoot) CreateScheduleWorkOrderCommandHandler() commands.ScheduleWorkOrderCommandHandler {
	return commands.NewScheduleWorkOrderCommandHandler(c.unitOfWorkFactory(), c.ledger, c.clock)
}

func (c *CompositionRoot) CreateTransitionWorkOrderCommandHandler() commands.TransitionWorkOrderCommandHandler {
	return commands.NewTransitionWorkOrderCommandHandler(c.unitOfWorkFactory(), c.ledger, c.clock)
}

func (c *CompositionRoot) CreateCancelWorkOrderCommandHandler() commands.CancelWorkOrderCommandHandler {
	return commands.NewCancelWorkOrderCommandHandler(c.unitOfWorkFactory(), c.ledger, c.clock)
}

// CreateRelayOutboxCommandHandler relays to Kafka when a broker is
// configured and always to websocket clients.
func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	sinks := make([]commands.Sink, 0, 2)
	if c.kafka != nil {
		sinks = append(sinks, commands.Sink{Name: "kafka", Publisher: c.kafka})
	}
	sinks = append(sinks, commands.Sink{Name: "ws", Publisher: c.hub})

	return commands.NewRelayOutboxCommandHandler(outboxrepo.NewGormOutboxRepository(c.gormDB), sinks, c.clock)
}

func (c *CompositionRoot) CreateCommandHandlers() httpin.CommandHandlers {
	return httpin.CommandHandlers{
		CreateStockItem:     c.CreateCreateStockItemCommandHandler(),
		DeleteStockItem:     c.CreateDeleteStockItemCommandHandler(),
		ReplenishStock:      c.CreateReplenishStockCommandHandler(),
		CreateBom:           c.CreateCreateBomCommandHandler(),
		ReviseBom:           c.CreateReviseBomCommandHandler(),
		DeleteBom:           c.CreateDeleteBomCommandHandler(),
		CreateWorkCenter:    c.CreateCreateWorkCenterCommandHandler(),
		DeleteWorkCenter:    c.CreateDeleteWorkCenterCommandHandler(),
		RecordDowntime:      c.CreateRecordDowntimeCommandHandler(),
		PlaceOrder:          c.CreatePlaceOrderCommandHandler(),
		UpdateOrderDetails:  c.CreateUpdateOrderDetailsCommandHandler(),
		RefreshOrderStatus:  c.CreateRefreshOrderStatusCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),
		DeleteOrder:         c.CreateDeleteOrderCommandHandler(),
		ScheduleWorkOrder:   c.CreateScheduleWorkOrderCommandHandler(),
		TransitionWorkOrder: c.CreateTransitionWorkOrderCommandHandler(),
		CancelWorkOrder:     c.CreateCancelWorkOrderCommandHandler(),
	}
}

func (c *CompositionRoot) CreateQueryHandlers() httpin.QueryHandlers {
	return httpin.QueryHandlers{
		GetStockItem:       queries.NewGetStockItemQueryHandler(c.gormDB),
		ListStockItems:     queries.NewListStockItemsQueryHandler(c.gormDB),
		ListStockMovements: queries.NewListStockMovementsQueryHandler(c.gormDB),
		GetBom:             queries.NewGetBomQueryHandler(c.gormDB),
		ListWorkCenters:    queries.NewListWorkCentersQueryHandler(c.gormDB),
		GetWorkCenterLoad:  queries.NewGetWorkCenterLoadQueryHandler(c.gormDB),
		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB, c.clock),
		ListOrders:         queries.NewListOrdersQueryHandler(c.gormDB, c.clock),
		GetDashboard:       queries.NewGetDashboardQueryHandler(c.gormDB, c.clock),
		ListWorkOrders:     queries.NewListWorkOrdersQueryHandler(c.gormDB),
	}
}

// CreateRouter builds the echo instance with every route wired.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(c.CreateCommandHandlers(), c.CreateQueryHandlers(), c.clock, c.logger)
	return httpin.NewRouter(server, c.hub, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.CreateRelayOutboxCommandHandler(), c.cfg.OutboxBatchSize, c.logger)
}

// Close releases the event sinks.
func (c *CompositionRoot) Close() error {
	c.hub.Close()
	if c.kafka != nil {
		return c.kafka.Close()
	}
	return nil
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncBomUoWFactory func() commands.BomUoW

func (f FuncBomUoWFactory) Create() commands.BomUoW {
	return f()
}

type FuncWorkCenterUoWFactory func() commands.WorkCenterUoW

func (f FuncWorkCenterUoWFactory) Create() commands.WorkCenterUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
