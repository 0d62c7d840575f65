package commands

import (
	"context"
	"fmt"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/stock"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/pkg/clock"
	"manufacturing/internal/pkg/metrics"
)

// TransitionWorkOrderCommandHandler applies one work order transition and
// everything that follows from it.
//
// Business rules:
//   - Blocked -> InProgress is admitted only while the center has a free slot
//   - InProgress -> Done consumes the order's reserved components for the
//     work order quantity
//   - The owning order's status is re-derived afterwards
//
// Locks are taken in the order: order, work order, work center, reservations,
// stock items.
type TransitionWorkOrderCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.StockLedger
	clock      clock.Clock
}

func NewTransitionWorkOrderCommandHandler(
	uowFactory UoWFactory,
	ledger services.StockLedger,
	clk clock.Clock,
) TransitionWorkOrderCommandHandler {
	return TransitionWorkOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		clock:      clk,
	}
}

func (h TransitionWorkOrderCommandHandler) Handle(ctx context.Context, cmd TransitionWorkOrderCommand) error {
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

	if wo.ReentersCapacity(cmd.Target()) {
		if err = h.admit(ctx, uow, wo); err != nil {
			return err
		}
	}

	changed, err := wo.TransitionTo(cmd.Target(), now)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = woRepo.Update(ctx, wo); err != nil {
		return err
	}

	if wo.Status() == workorder.Done {
		if err = h.consume(ctx, uow, o, wo, now); err != nil {
			return err
		}
	}

	if err = refreshOrder(ctx, uow, h.ledger, o, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.WorkOrderTransitions.WithLabelValues(wo.Status().String()).Inc()
	return nil
}

func (h TransitionWorkOrderCommandHandler) admit(ctx context.Context, uow UoW, wo *workorder.WorkOrder) error {
	wc, err := uow.WorkCenterRepository().GetForUpdate(ctx, wo.WorkCenterID())
	if err != nil {
		return err
	}

	load, err := uow.WorkOrderRepository().CountActiveByWorkCenter(ctx, wc.ID())
	if err != nil {
		return err
	}
	return wc.Admit(int(load))
}

// consume deducts the components of wo's quantity from the order's reservations.
func (h TransitionWorkOrderCommandHandler) consume(
	ctx context.Context,
	uow UoW,
	o *order.Order,
	wo *workorder.WorkOrder,
	at time.Time,
) error {
	b, err := uow.BomRepository().Get(ctx, o.BomID())
	if err != nil {
		return err
	}

	reqs, err := b.Requirements(wo.Quantity())
	if err != nil {
		return err
	}

	resRepo := uow.ReservationRepository()
	reservations, err := resRepo.GetByOrderForUpdate(ctx, o.ID())
	if err != nil {
		return err
	}

	byItem := make(map[kernel.UUID]*stock.Reservation, len(reservations))
	for _, res := range reservations {
		byItem[res.ItemID()] = res
	}

	items, err := lockItems(ctx, uow.StockItemRepository(), b.ItemIDs())
	if err != nil {
		return err
	}

	itemRepo := uow.StockItemRepository()
	touched := make([]*stock.Reservation, 0, len(reqs))
	for _, req := range reqs {
		res, ok := byItem[req.ItemID]
		if !ok {
			return fmt.Errorf("%w: order %s holds none of item %s", stock.ErrNoSuchReservation, o.ID(), req.ItemID)
		}

		item := items[req.ItemID]
		if err = h.ledger.Consume(item, res, req.Quantity, at); err != nil {
			return err
		}
		if err = itemRepo.Update(ctx, item); err != nil {
			return err
		}
		touched = append(touched, res)
	}

	return resRepo.Save(ctx, touched...)
}
