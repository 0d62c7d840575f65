package commands

import (
	"context"

	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/pkg/clock"
)

// CancelWorkOrderCommandHandler removes a Planned work order and re-derives
// the owning order's status. The order's reservation is left as it is; the
// units can be scheduled again.
type CancelWorkOrderCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.StockLedger
	clock      clock.Clock
}

func NewCancelWorkOrderCommandHandler(
	uowFactory UoWFactory,
	ledger services.StockLedger,
	clk clock.Clock,
) CancelWorkOrderCommandHandler {
	return CancelWorkOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		clock:      clk,
	}
}

func (h CancelWorkOrderCommandHandler) Handle(ctx context.Context, cmd CancelWorkOrderCommand) error {
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

	woRepo := uow.WorkOrderRepository()
	unlocked, err := woRepo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	o, err := uow.OrderRepository().GetForUpdate(ctx, unlocked.OrderID())
	if err != nil {
		return err
	}

	wo, err := woRepo.GetForUpdate(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}
	if err = wo.CanCancel(); err != nil {
		return err
	}

	if err = woRepo.Delete(ctx, wo.ID()); err != nil {
		return err
	}

	if err = refreshOrder(ctx, uow, h.ledger, o, h.clock.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
