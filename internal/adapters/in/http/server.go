package http

import (
	"log/slog"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/generated/servers"
	"manufacturing/internal/pkg/clock"
	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers groups the use cases that change state.
type CommandHandlers struct {
	CreateStockItem     commands.CreateStockItemCommandHandler
	DeleteStockItem     commands.DeleteStockItemCommandHandler
	ReplenishStock      commands.ReplenishStockCommandHandler
	CreateBom           commands.CreateBomCommandHandler
	ReviseBom           commands.ReviseBomCommandHandler
	DeleteBom           commands.DeleteBomCommandHandler
	CreateWorkCenter    commands.CreateWorkCenterCommandHandler
	DeleteWorkCenter    commands.DeleteWorkCenterCommandHandler
	RecordDowntime      commands.RecordDowntimeCommandHandler
	PlaceOrder          commands.PlaceOrderCommandHandler
	UpdateOrderDetails  commands.UpdateOrderDetailsCommandHandler
	RefreshOrderStatus  commands.RefreshOrderStatusCommandHandler
	CancelOrder         commands.CancelOrderCommandHandler
	DeleteOrder         commands.DeleteOrderCommandHandler
	ScheduleWorkOrder   commands.ScheduleWorkOrderCommandHandler
	TransitionWorkOrder commands.TransitionWorkOrderCommandHandler
	CancelWorkOrder     commands.CancelWorkOrderCommandHandler
}

// QueryHandlers groups the read side.
type QueryHandlers struct {
	GetStockItem       queries.GetStockItemQueryHandler
	ListStockItems     queries.ListStockItemsQueryHandler
	ListStockMovements queries.ListStockMovementsQueryHandler
	GetBom             queries.GetBomQueryHandler
	ListWorkCenters    queries.ListWorkCentersQueryHandler
	GetWorkCenterLoad  queries.GetWorkCenterLoadQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	ListOrders         queries.ListOrdersQueryHandler
	GetDashboard       queries.GetDashboardQueryHandler
	ListWorkOrders     queries.ListWorkOrdersQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It maps request bodies to commands and queries and returns their results;
// failures are returned as errors and rendered by the error handler.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	clock    clock.Clock
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds CommandHandlers, qs QueryHandlers, clk clock.Clock, logger *slog.Logger) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		clock:    clk,
		logger:   logger.With("component", "http"),
	}
}

func toKernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func parseDecimal(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return d, nil
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	b := id.Bytes()
	return &b
}
