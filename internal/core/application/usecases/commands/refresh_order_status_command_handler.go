package commands

import (
	"context"

	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/pkg/clock"
)

// RefreshOrderStatusCommandHandler stores the status derived from the
// order's work orders and today's date. Running it twice changes nothing the
// second time.
type RefreshOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.StockLedger
	clock      clock.Clock
}

func NewRefreshOrderStatusCommandHandler(
	uowFactory UoWFactory,
	ledger services.StockLedger,
	clk clock.Clock,
) RefreshOrderStatusCommandHandler {
	return RefreshOrderStatusCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		clock:      clk,
	}
}

func (h RefreshOrderStatusCommandHandler) Handle(ctx context.Context, cmd RefreshOrderStatusCommand) error {
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

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = refreshOrder(ctx, uow, h.ledger, o, h.clock.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
