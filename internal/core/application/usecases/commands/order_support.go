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
	"manufacturing/internal/core/ports"
)

// progressOf summarizes the work orders currently stored for orderID.
func progressOf(ctx context.Context, repo ports.WorkOrderRepository, orderID kernel.UUID) (order.Progress, []*workorder.WorkOrder, error) {
	wos, err := repo.ListByOrder(ctx, orderID)
	if err != nil {
		return order.Progress{}, nil, err
	}
	return services.SummarizeProgress(wos), wos, nil
}

// refreshOrder re-derives the order status from its stored work orders and
// writes the order when the status changed. An order reaches Done only after
// its whole quantity was produced; any reservation its work orders left
// behind is given back then.
func refreshOrder(
	ctx context.Context,
	uow UoW,
	ledger services.StockLedger,
	o *order.Order,
	at time.Time,
) error {
	progress, _, err := progressOf(ctx, uow.WorkOrderRepository(), o.ID())
	if err != nil {
		return err
	}

	if !o.RefreshStatus(progress, kernel.DateOf(at), at) {
		return nil
	}

	if o.Status() == order.Done {
		if err = releaseOutstanding(ctx, uow, ledger, o.ID(), at); err != nil {
			return err
		}
		o.MarkConsumed()
	}

	return uow.OrderRepository().Update(ctx, o)
}

// releaseOutstanding locks the reservations of orderID, then their stock
// items, and releases every outstanding unit.
func releaseOutstanding(
	ctx context.Context,
	uow UoW,
	ledger services.StockLedger,
	orderID kernel.UUID,
	at time.Time,
) error {
	resRepo := uow.ReservationRepository()
	reservations, err := resRepo.GetByOrderForUpdate(ctx, orderID)
	if err != nil {
		return err
	}

	var open []*stock.Reservation
	for _, res := range reservations {
		if res.Outstanding() > 0 {
			open = append(open, res)
		}
	}
	if len(open) == 0 {
		return nil
	}

	items, err := lockItems(ctx, uow.StockItemRepository(), itemIDsOf(open))
	if err != nil {
		return err
	}

	itemRepo := uow.StockItemRepository()
	for _, res := range open {
		item := items[res.ItemID()]
		if err = ledger.Release(item, res, res.Outstanding(), at); err != nil {
			return err
		}
		if err = itemRepo.Update(ctx, item); err != nil {
			return err
		}
	}

	return resRepo.Save(ctx, open...)
}

// lockItems locks the stock item rows of ids and indexes them by id.
func lockItems(ctx context.Context, repo ports.StockItemRepository, ids []kernel.UUID) (map[kernel.UUID]*stock.Item, error) {
	items, err := repo.GetForUpdate(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*stock.Item, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("stock item %s was not locked", id)
		}
	}
	return byID, nil
}

func itemIDsOf(reservations []*stock.Reservation) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(reservations))
	for _, res := range reservations {
		ids = append(ids, res.ItemID())
	}
	return ids
}
