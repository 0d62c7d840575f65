package http

import (
	"net/http"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListWorkOrders handles GET /api/v1/work-orders.
func (s *Server) ListWorkOrders(ctx echo.Context, params servers.ListWorkOrdersParams) error {
	var centerID *kernel.UUID
	if params.WorkCenterId != nil {
		id, err := toKernelUUID(*params.WorkCenterId)
		if err != nil {
			return err
		}
		centerID = &id
	}

	query, err := queries.NewListWorkOrdersQuery(centerID)
	if err != nil {
		return err
	}
	workOrders, err := s.queries.ListWorkOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.WorkOrder, len(workOrders))
	for i, wo := range workOrders {
		response[i] = toWorkOrder(wo)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ScheduleWorkOrder handles POST /api/v1/orders/{id}/work-orders. An omitted
// quantity schedules what the order still needs.
func (s *Server) ScheduleWorkOrder(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.NewWorkOrder
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	orderID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	centerID, err := toKernelUUID(body.WorkCenterId)
	if err != nil {
		return err
	}
	operatorID, err := toKernelUUID(body.OperatorId)
	if err != nil {
		return err
	}

	quantity := 0
	if body.Quantity != nil {
		quantity = *body.Quantity
	}
	comments := ""
	if body.Comments != nil {
		comments = *body.Comments
	}

	workOrderID := kernel.NewUUID()
	cmd, err := commands.NewScheduleWorkOrderCommand(workOrderID, orderID, centerID, operatorID, quantity, comments)
	if err != nil {
		return err
	}
	if err = s.commands.ScheduleWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: workOrderID.Bytes()})
}

// CancelWorkOrder handles DELETE /api/v1/work-orders/{id}.
func (s *Server) CancelWorkOrder(ctx echo.Context, id openapi_types.UUID) error {
	workOrderID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelWorkOrderCommand(workOrderID)
	if err != nil {
		return err
	}

	if err = s.commands.CancelWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// TransitionWorkOrder handles POST /api/v1/work-orders/{id}/transitions.
func (s *Server) TransitionWorkOrder(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.Transition
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	workOrderID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	target, err := workorder.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}
	cmd, err := commands.NewTransitionWorkOrderCommand(workOrderID, target)
	if err != nil {
		return err
	}

	if err = s.commands.TransitionWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toWorkOrder(wo queries.WorkOrderResponse) servers.WorkOrder {
	return servers.WorkOrder{
		Id:             wo.ID.Bytes(),
		OrderId:        wo.OrderID.Bytes(),
		WorkCenterId:   wo.WorkCenterID.Bytes(),
		WorkCenterName: wo.WorkCenterName,
		OperatorId:     wo.OperatorID.Bytes(),
		Quantity:       wo.Quantity,
		Status:         servers.WorkOrderStatus(wo.Status.String()),
		StartedAt:      wo.StartedAt,
		FinishedAt:     wo.FinishedAt,
		Comments:       wo.Comments,
		LaborCost:      wo.LaborCost.StringFixed(2),
	}
}
