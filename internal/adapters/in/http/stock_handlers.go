package http

import (
	"net/http"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/stock"
	"manufacturing/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const defaultMovementsLimit = 100

// ListStockItems handles GET /api/v1/stock-items.
func (s *Server) ListStockItems(ctx echo.Context) error {
	items, err := s.queries.ListStockItems.Handle(ctx.Request().Context(), queries.NewListStockItemsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.StockItem, len(items))
	for i, item := range items {
		response[i] = stockItemResponse(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateStockItem handles POST /api/v1/stock-items.
func (s *Server) CreateStockItem(ctx echo.Context) error {
	var body servers.NewStockItem
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	kind, err := stock.ParseKind(body.Kind)
	if err != nil {
		return err
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateStockItemCommand(itemID, body.Name, kind, body.OnHand)
	if err != nil {
		return err
	}
	if err = s.commands.CreateStockItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: itemID.Bytes()})
}

// GetStockItem handles GET /api/v1/stock-items/{id}.
func (s *Server) GetStockItem(ctx echo.Context, id openapi_types.UUID) error {
	itemID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetStockItemQuery(itemID)
	if err != nil {
		return err
	}

	item, err := s.queries.GetStockItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stockItemResponse(item))
}

// DeleteStockItem handles DELETE /api/v1/stock-items/{id}.
func (s *Server) DeleteStockItem(ctx echo.Context, id openapi_types.UUID) error {
	itemID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteStockItemCommand(itemID)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteStockItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReplenishStockItem handles POST /api/v1/stock-items/{id}/replenish.
func (s *Server) ReplenishStockItem(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.Replenishment
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	itemID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewReplenishStockCommand(itemID, body.Quantity)
	if err != nil {
		return err
	}

	if err = s.commands.ReplenishStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListStockMovements handles GET /api/v1/stock-items/{id}/movements.
func (s *Server) ListStockMovements(ctx echo.Context, id openapi_types.UUID, params servers.ListStockMovementsParams) error {
	itemID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	limit := defaultMovementsLimit
	if params.Limit != nil {
		limit = *params.Limit
	}
	query, err := queries.NewListStockMovementsQuery(itemID, limit)
	if err != nil {
		return err
	}

	movements, err := s.queries.ListStockMovements.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.StockMovement, len(movements))
	for i, m := range movements {
		response[i] = servers.StockMovement{
			Id:         m.ID.Bytes(),
			OrderId:    optionalUUID(m.OrderID),
			Kind:       m.Kind,
			Quantity:   m.Quantity,
			OccurredAt: m.OccurredAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func stockItemResponse(item queries.StockItemResponse) servers.StockItem {
	return servers.StockItem{
		Id:        item.ID.Bytes(),
		Name:      item.Name,
		Kind:      item.Kind,
		OnHand:    item.OnHand,
		Reserved:  item.Reserved,
		Available: item.Available,
	}
}
