package commands

import (
	"context"

	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/pkg/clock"
)

// DeleteOrderCommandHandler removes an order whose work orders are all still
// Planned, together with its work orders and reservations. Outstanding
// reserved units go back to stock first.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.StockLedger
	clock      clock.Clock
}

func NewDeleteOrderCommandHandler(
	uowFactory UoWFactory,
	ledger services.StockLedger,
	clk clock.Clock,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		clock:      clk,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	progress, _, err := progressOf(ctx, uow.WorkOrderRepository(), o.ID())
	if err != nil {
		return err
	}

	if err = o.MarkDeleted(progress, now); err != nil {
		return err
	}

	if err = releaseOutstanding(ctx, uow, h.ledger, o.ID(), now); err != nil {
		return err
	}

	if err = uow.ReservationRepository().DeleteByOrder(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.WorkOrderRepository().DeleteByOrder(ctx, o.ID()); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
