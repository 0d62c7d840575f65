package commands

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/clock"
)

// ReplenishStockCommandHandler locks the stock item row and adds the received units.
type ReplenishStockCommandHandler struct {
	uowFactory StockUoWFactory
	clock      clock.Clock
}

func NewReplenishStockCommandHandler(uowFactory StockUoWFactory, clk clock.Clock) ReplenishStockCommandHandler {
	return ReplenishStockCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h ReplenishStockCommandHandler) Handle(ctx context.Context, cmd ReplenishStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StockItemRepository()
	items, err := repo.GetForUpdate(ctx, []kernel.UUID{cmd.ItemID()})
	if err != nil {
		return err
	}

	item := items[0]
	if err = item.Replenish(cmd.Quantity(), h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
