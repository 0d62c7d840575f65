package commands

import (
	"context"

	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/pkg/clock"
)

// CancelOrderCommandHandler stops an order that has no Done work orders. It
// releases the outstanding reservation and removes the work orders.
// Cancelling a Cancelled order succeeds without changes.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.StockLedger
	clock      clock.Clock
}

func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	ledger services.StockLedger,
	clk clock.Clock,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		clock:      clk,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	now := h.clock.Now()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	progress, _, err := progressOf(ctx, uow.WorkOrderRepository(), o.ID())
	if err != nil {
		return err
	}

	cancelled, err := o.Cancel(progress, now)
	if err != nil {
		return err
	}
	if !cancelled {
		return nil
	}

	if err = releaseOutstanding(ctx, uow, h.ledger, o.ID(), now); err != nil {
		return err
	}

	if err = uow.WorkOrderRepository().DeleteByOrder(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
