package commands

import (
	"context"

	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/pkg/clock"
	"manufacturing/internal/pkg/errs"
)

// ScheduleWorkOrderCommandHandler admits a new Planned work order.
//
// Business rules:
//   - The order must be neither Done nor Cancelled
//   - The work center must have load < capacity, counted under its row lock
//   - Quantity is between 1 and the order quantity not yet scheduled
type ScheduleWorkOrderCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.StockLedger
	clock      clock.Clock
}

func NewScheduleWorkOrderCommandHandler(
	uowFactory UoWFactory,
	ledger services.StockLedger,
	clk clock.Clock,
) ScheduleWorkOrderCommandHandler {
	return ScheduleWorkOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		clock:      clk,
	}
}

func (h ScheduleWorkOrderCommandHandler) Handle(ctx context.Context, cmd ScheduleWorkOrderCommand) error {
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
	if err = o.EnsureOpen(); err != nil {
		return err
	}

	woRepo := uow.WorkOrderRepository()
	progress, _, err := progressOf(ctx, woRepo, o.ID())
	if err != nil {
		return err
	}

	remaining := o.Remaining(progress)
	quantity := cmd.Quantity()
	if quantity == 0 {
		quantity = remaining
	}
	if quantity < 1 || quantity > remaining {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, remaining)
	}

	wc, err := uow.WorkCenterRepository().GetForUpdate(ctx, cmd.WorkCenterID())
	if err != nil {
		return err
	}

	load, err := woRepo.CountActiveByWorkCenter(ctx, wc.ID())
	if err != nil {
		return err
	}
	if err = wc.Admit(int(load)); err != nil {
		return err
	}

	wo, err := workorder.NewWorkOrder(
		cmd.WorkOrderID(), o.ID(), wc.ID(), cmd.OperatorID(), quantity, cmd.Comments(),
	)
	if err != nil {
		return err
	}

	if err = woRepo.Add(ctx, wo); err != nil {
		return err
	}

	if err = refreshOrder(ctx, uow, h.ledger, o, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
