package stock

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
	ErrNameIsRequired       = errs.NewValueIsRequiredError("name")
	ErrQuantityIsInvalid    = errs.NewValueIsInvalidError("quantity")

	// ErrInsufficientStock rejects a reservation larger than on-hand minus reserved.
	ErrInsufficientStock = errs.NewConflictError("insufficient stock")
	// ErrNoSuchReservation rejects consuming or releasing more than an order has reserved.
	ErrNoSuchReservation = errs.NewConflictError("no matching outstanding reservation")
)

// Item is a stock keeping unit tracked by the ledger.
type Item struct {
	id        kernel.UUID
	name      string
	kind      Kind
	onHand    int
	reserved  int
	movements []Movement
	guard     guard.ConstructorGuard
}

// NewItem registers a stock item with an opening on-hand quantity and nothing reserved.
// A positive opening quantity is recorded as a replenishment.
func NewItem(id kernel.UUID, name string, kind Kind, onHand int, at time.Time) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setKind(kind),
		item.setCounters(onHand, 0),
	); err != nil {
		return nil, err
	}

	if onHand > 0 {
		item.record(nil, MovementReplenish, onHand, at)
	}

	return item, nil
}

// RestoreItem rebuilds an item from storage, re-checking the counter invariants.
func RestoreItem(id kernel.UUID, name string, kind Kind, onHand, reserved int) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setKind(kind),
		item.setCounters(onHand, reserved),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Kind() Kind {
	return i.kind
}

func (i *Item) OnHand() int {
	return i.onHand
}

func (i *Item) Reserved() int {
	return i.reserved
}

// Available is the quantity that can still be reserved.
func (i *Item) Available() int {
	return i.onHand - i.reserved
}

// CanReserve reports whether qty could be reserved now, without changing anything.
func (i *Item) CanReserve(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", qty))
	}
	if i.Available() < qty {
		return fmt.Errorf("%w: %s needs %d, %d available", ErrInsufficientStock, i.name, qty, i.Available())
	}
	return nil
}

// Reserve earmarks qty units for orderID.
func (i *Item) Reserve(orderID kernel.UUID, qty int, at time.Time) error {
	if err := i.CanReserve(qty); err != nil {
		return err
	}

	i.reserved += qty
	i.record(&orderID, MovementReserve, qty, at)
	return nil
}

// Release returns qty reserved units to the available pool without touching on-hand.
func (i *Item) Release(orderID kernel.UUID, qty int, at time.Time) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", qty))
	}
	if i.reserved < qty {
		return fmt.Errorf("%w: %s has %d reserved, release of %d requested", ErrNoSuchReservation, i.name, i.reserved, qty)
	}

	i.reserved -= qty
	i.record(&orderID, MovementRelease, qty, at)
	return nil
}

// Consume deducts qty previously reserved units from both on-hand and reserved.
func (i *Item) Consume(orderID kernel.UUID, qty int, at time.Time) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", qty))
	}
	if i.reserved < qty {
		return fmt.Errorf("%w: %s has %d reserved, consumption of %d requested", ErrNoSuchReservation, i.name, i.reserved, qty)
	}

	i.reserved -= qty
	i.onHand -= qty
	i.record(&orderID, MovementConsume, qty, at)
	return nil
}

// Replenish adds qty units to on-hand stock.
func (i *Item) Replenish(qty int, at time.Time) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", qty))
	}

	if qty > kernel.MaxQuantity-i.onHand {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, kernel.MaxQuantity-i.onHand)
	}

	i.onHand += qty
	i.record(nil, MovementReplenish, qty, at)
	return nil
}

// PullMovements returns the movements recorded since the last call and forgets them.
func (i *Item) PullMovements() []Movement {
	out := i.movements
	i.movements = nil
	return out
}

func (i *Item) record(orderID *kernel.UUID, kind MovementKind, qty int, at time.Time) {
	i.movements = append(i.movements, Movement{
		ID:         kernel.NewUUID(),
		ItemID:     i.id,
		OrderID:    orderID,
		Kind:       kind,
		Quantity:   qty,
		OccurredAt: at,
	})
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	i.kind = kind
	return nil
}

func (i *Item) setCounters(onHand, reserved int) error {
	if onHand < 0 || onHand > kernel.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("on hand", onHand, 0, kernel.MaxQuantity)
	}
	if reserved < 0 || reserved > onHand {
		return errs.NewValueIsOutOfRangeError("reserved", reserved, 0, onHand)
	}
	i.onHand = onHand
	i.reserved = reserved
	return nil
}
