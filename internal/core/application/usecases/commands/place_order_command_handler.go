package commands

import (
	"context"

	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/pkg/clock"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/metrics"
)

// PlaceOrderCommandHandler creates an order and reserves every component of
// its bill of material in one transaction.
//
// The bill of material is held under a shared lock so it cannot be deleted
// meanwhile. Stock item rows are locked in id order, all requirements are
// checked, then all are reserved. Any shortfall rolls the whole placement back.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.StockLedger
	clock      clock.Clock
}

func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	ledger services.StockLedger,
	clk clock.Clock,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		clock:      clk,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.place(ctx, cmd); err != nil {
		metrics.PlacementsRejected.WithLabelValues(string(errs.KindOf(err))).Inc()
		return err
	}

	metrics.OrdersPlaced.Inc()
	return nil
}

func (h PlaceOrderCommandHandler) place(ctx context.Context, cmd PlaceOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()

	b, err := uow.BomRepository().GetForShare(ctx, cmd.BomID())
	if err != nil {
		return err
	}

	reqs, err := b.Requirements(cmd.Quantity())
	if err != nil {
		return err
	}

	itemRepo := uow.StockItemRepository()
	items, err := itemRepo.GetForUpdate(ctx, b.ItemIDs())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(), cmd.Customer(), cmd.Product(), b.ID(), cmd.Quantity(),
		cmd.PlacedOn(), cmd.DeliveryOn(), now,
	)
	if err != nil {
		return err
	}

	reservations, err := h.ledger.ReserveAll(o.ID(), items, reqs, now)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	for _, item := range items {
		if err = itemRepo.Update(ctx, item); err != nil {
			return err
		}
	}

	if err = uow.ReservationRepository().Save(ctx, reservations...); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
