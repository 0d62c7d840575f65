package http

import (
	"bytes"
	"fmt"
	"net/http"

	"manufacturing/internal/adapters/out/xlsx"
	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.queries.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]servers.OrderSnapshot, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderSnapshot{
			Id:         o.ID.Bytes(),
			Product:    o.Product,
			Status:     servers.OrderStatus(o.Status.String()),
			DeliveryOn: toDate(o.DeliveryOn),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders. The placement date defaults to
// today.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	bomID, err := toKernelUUID(body.BomId)
	if err != nil {
		return err
	}
	placedOn := kernel.DateOf(s.clock.Now())
	if body.PlacedOn != nil {
		placedOn = kernel.DateOf(body.PlacedOn.Time)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, body.Customer, body.Product, bomID, body.Quantity,
		placedOn, kernel.DateOf(body.DeliveryOn.Time))
	if err != nil {
		return err
	}
	if err = s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// ExportOrders handles GET /api/v1/orders/export.
func (s *Server) ExportOrders(ctx echo.Context) error {
	orders, err := s.queries.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = xlsx.WriteOrders(&buf, orders); err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", xlsx.OrdersFileName))
	return ctx.Blob(http.StatusOK, xlsx.ContentType, buf.Bytes())
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	o, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := servers.Order{
		Id:           o.ID.Bytes(),
		Customer:     o.Customer,
		Product:      o.Product,
		BomId:        o.BomID.Bytes(),
		Quantity:     o.Quantity,
		PlacedOn:     toDate(o.PlacedOn),
		DeliveryOn:   toDate(o.DeliveryOn),
		Status:       servers.OrderStatus(o.Status.String()),
		Availability: o.Availability.String(),
		LaborCost:    o.LaborCost.StringFixed(2),
		WorkOrders:   make([]servers.WorkOrder, len(o.WorkOrders)),
	}
	for i, wo := range o.WorkOrders {
		response.WorkOrders[i] = toWorkOrder(wo)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderDetails handles PATCH /api/v1/orders/{id}.
func (s *Server) UpdateOrderDetails(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.OrderDetails
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	orderID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateOrderDetailsCommand(orderID, body.Customer, kernel.DateOf(body.DeliveryOn.Time))
	if err != nil {
		return err
	}

	if err = s.commands.UpdateOrderDetails.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RefreshOrderStatus handles POST /api/v1/orders/{id}/refresh-status.
func (s *Server) RefreshOrderStatus(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRefreshOrderStatusCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.commands.RefreshOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	d, err := s.queries.GetDashboard.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Dashboard{
		Total:      d.Total,
		Draft:      d.Draft,
		InProgress: d.InProgress,
		Done:       d.Done,
		Delayed:    d.Delayed,
		Cancelled:  d.Cancelled,
	})
}

func toDate(d kernel.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}
