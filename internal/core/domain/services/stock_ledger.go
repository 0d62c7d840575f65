package services

import (
	"errors"
	"fmt"
	"time"

	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/stock"
	"manufacturing/internal/pkg/errs"
)

// StockLedger moves stock between the on-hand, reserved and consumed states
// while keeping item counters and per-order reservations in step.
//
// Business rules:
//   - Reserving for an order either succeeds for every requirement or changes nothing
//   - Consumption and release never exceed the order's outstanding reservation
type StockLedger interface {
	ReserveAll(orderID kernel.UUID, items []*stock.Item, reqs []bom.Requirement, at time.Time) ([]*stock.Reservation, error)
	Consume(item *stock.Item, res *stock.Reservation, qty int, at time.Time) error
	Release(item *stock.Item, res *stock.Reservation, qty int, at time.Time) error
}

var _ StockLedger = &stockLedger{}

type stockLedger struct{}

func NewStockLedger() StockLedger {
	return &stockLedger{}
}

// ReserveAll checks every requirement against the items first and only then
// reserves. On error no item has been changed.
func (l *stockLedger) ReserveAll(
	orderID kernel.UUID,
	items []*stock.Item,
	reqs []bom.Requirement,
	at time.Time,
) ([]*stock.Reservation, error) {
	if len(reqs) == 0 {
		return nil, errs.NewValueIsRequiredError("requirements")
	}

	byID := make(map[kernel.UUID]*stock.Item, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		byID[item.ID()] = item
	}

	var checks []error
	for _, req := range reqs {
		item, ok := byID[req.ItemID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("stock item", req.ItemID.String())
		}
		checks = append(checks, item.CanReserve(req.Quantity))
	}
	if err := errors.Join(checks...); err != nil {
		return nil, err
	}

	reservations := make([]*stock.Reservation, 0, len(reqs))
	for _, req := range reqs {
		if err := byID[req.ItemID].Reserve(orderID, req.Quantity, at); err != nil {
			return nil, fmt.Errorf("reserve %s after successful check: %w", req.ItemID, err)
		}
		res, err := stock.NewReservation(kernel.NewUUID(), orderID, req.ItemID, req.Quantity)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

// Consume turns qty reserved units of item into consumed stock for res's order.
func (l *stockLedger) Consume(item *stock.Item, res *stock.Reservation, qty int, at time.Time) error {
	if err := l.match(item, res); err != nil {
		return err
	}
	if err := res.Consume(qty); err != nil {
		return err
	}
	return item.Consume(res.OrderID(), qty, at)
}

// Release hands qty reserved units back to the available pool.
func (l *stockLedger) Release(item *stock.Item, res *stock.Reservation, qty int, at time.Time) error {
	if err := l.match(item, res); err != nil {
		return err
	}
	if err := res.Release(qty); err != nil {
		return err
	}
	return item.Release(res.OrderID(), qty, at)
}

func (l *stockLedger) match(item *stock.Item, res *stock.Reservation) error {
	if err := errors.Join(item.Validate(), res.Validate()); err != nil {
		return err
	}
	if !item.ID().IsEqual(res.ItemID()) {
		return fmt.Errorf("%w: reservation %s is for item %s, not %s",
			stock.ErrNoSuchReservation, res.ID(), res.ItemID(), item.ID())
	}
	return nil
}
