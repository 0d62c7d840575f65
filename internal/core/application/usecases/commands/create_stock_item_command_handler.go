package commands

import (
	"context"

	"manufacturing/internal/core/domain/model/stock"
	"manufacturing/internal/pkg/clock"
)

// CreateStockItemCommandHandler persists a new stock item. A positive opening
// quantity is recorded as a replenish movement.
type CreateStockItemCommandHandler struct {
	uowFactory StockUoWFactory
	clock      clock.Clock
}

func NewCreateStockItemCommandHandler(uowFactory StockUoWFactory, clk clock.Clock) CreateStockItemCommandHandler {
	return CreateStockItemCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h CreateStockItemCommandHandler) Handle(ctx context.Context, cmd CreateStockItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := stock.NewItem(cmd.ItemID(), cmd.Name(), cmd.Kind(), cmd.OnHand(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StockItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
