package stock

import (
	"errors"
	"fmt"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var ErrReservationIsNotConstructed = errors.New("Reservation must be created via NewReservation or RestoreReservation constructor")

// Reservation is the quantity of one stock item held for one order.
// Outstanding is what can still be consumed or released; Consumed is history.
type Reservation struct {
	id          kernel.UUID
	orderID     kernel.UUID
	itemID      kernel.UUID
	outstanding int
	consumed    int
	guard       guard.ConstructorGuard
}

func NewReservation(id, orderID, itemID kernel.UUID, qty int) (*Reservation, error) {
	if qty <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", qty))
	}
	return RestoreReservation(id, orderID, itemID, qty, 0)
}

func RestoreReservation(id, orderID, itemID kernel.UUID, outstanding, consumed int) (*Reservation, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), itemID.Validate()); err != nil {
		return nil, err
	}
	if outstanding < 0 {
		return nil, errs.NewValueIsOutOfRangeError("outstanding", outstanding, 0, "unbounded")
	}
	if consumed < 0 {
		return nil, errs.NewValueIsOutOfRangeError("consumed", consumed, 0, "unbounded")
	}

	return &Reservation{
		id:          id,
		orderID:     orderID,
		itemID:      itemID,
		outstanding: outstanding,
		consumed:    consumed,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (r *Reservation) Validate() error {
	if r == nil {
		return ErrReservationIsNotConstructed
	}
	return r.guard.Validate(ErrReservationIsNotConstructed)
}

func (r *Reservation) ID() kernel.UUID      { return r.id }
func (r *Reservation) OrderID() kernel.UUID { return r.orderID }
func (r *Reservation) ItemID() kernel.UUID  { return r.itemID }
func (r *Reservation) Outstanding() int     { return r.outstanding }
func (r *Reservation) Consumed() int        { return r.consumed }

// Consume moves qty from outstanding to consumed.
func (r *Reservation) Consume(qty int) error {
	if qty <= 0 || qty > r.outstanding {
		return fmt.Errorf("%w: %d outstanding, %d requested", ErrNoSuchReservation, r.outstanding, qty)
	}
	r.outstanding -= qty
	r.consumed += qty
	return nil
}

// Release drops qty from outstanding.
func (r *Reservation) Release(qty int) error {
	if qty <= 0 || qty > r.outstanding {
		return fmt.Errorf("%w: %d outstanding, %d requested", ErrNoSuchReservation, r.outstanding, qty)
	}
	r.outstanding -= qty
	return nil
}
