package order

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
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	ErrCustomerIsRequired    = errs.NewValueIsRequiredError("customer")
	ErrProductIsRequired     = errs.NewValueIsRequiredError("product")
	ErrDeliveryBeforePlaced  = errs.NewValueIsInvalidError("delivery date")

	// ErrCannotCancel rejects cancelling an order that already finished work.
	ErrCannotCancel = errs.NewConflictError("order with finished work orders cannot be cancelled")
	// ErrOrderClosed rejects scheduling work for a Done or Cancelled order.
	ErrOrderClosed = errs.NewConflictError("order is closed")
	// ErrOrderNotDeletable rejects deleting an order whose work has started.
	ErrOrderNotDeletable = errs.NewIntegrityError("order", "has work orders that left Planned")
)

// Order is a manufacturing order. Its stock is reserved at placement; work
// orders reference it by ID and drive its status.
type Order struct {
	id           kernel.UUID
	customer     string
	product      string
	bomID        kernel.UUID
	quantity     int
	placedOn     kernel.Date
	deliveryOn   kernel.Date
	status       Status
	availability Availability
	events       []Event
	guard        guard.ConstructorGuard
}

// NewOrder creates a Draft order whose components are already Reserved and
// records an EventPlaced.
func NewOrder(
	id kernel.UUID,
	customer, product string,
	bomID kernel.UUID,
	quantity int,
	placedOn, deliveryOn kernel.Date,
	at time.Time,
) (*Order, error) {
	o, err := RestoreOrder(id, customer, product, bomID, quantity, placedOn, deliveryOn, Draft, Reserved)
	if err != nil {
		return nil, err
	}
	o.record(EventPlaced, at)
	return o, nil
}

// RestoreOrder rebuilds an order from storage.
func RestoreOrder(
	id kernel.UUID,
	customer, product string,
	bomID kernel.UUID,
	quantity int,
	placedOn, deliveryOn kernel.Date,
	status Status,
	availability Availability,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setProduct(product),
		o.setBomID(bomID),
		o.setQuantity(quantity),
		o.setDates(placedOn, deliveryOn),
		status.Validate(),
		availability.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.availability = availability
	return o, nil
}

// Validate ensures the Order was built by one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID            { return o.id }
func (o *Order) Customer() string           { return o.customer }
func (o *Order) Product() string            { return o.product }
func (o *Order) BomID() kernel.UUID         { return o.bomID }
func (o *Order) Quantity() int              { return o.quantity }
func (o *Order) PlacedOn() kernel.Date      { return o.placedOn }
func (o *Order) DeliveryOn() kernel.Date    { return o.deliveryOn }
func (o *Order) Status() Status             { return o.status }
func (o *Order) Availability() Availability { return o.availability }

// Remaining is the product quantity not yet covered by work orders.
func (o *Order) Remaining(p Progress) int {
	return max(o.quantity-p.Scheduled, 0)
}

// EnsureOpen rejects work on Done or Cancelled orders.
func (o *Order) EnsureOpen() error {
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: %s is %s", ErrOrderClosed, o.id, o.status)
	}
	return nil
}

// RefreshStatus re-derives the status and reports whether it changed.
// Calling it again with the same inputs changes nothing.
func (o *Order) RefreshStatus(p Progress, today kernel.Date, at time.Time) bool {
	next := DeriveStatus(o.status, p, o.quantity, o.deliveryOn, today)
	if next == o.status {
		return false
	}
	o.status = next
	o.record(EventStatusChanged, at)
	return true
}

// MarkConsumed records that production used up the reservation.
func (o *Order) MarkConsumed() {
	if o.status == Done {
		o.availability = Consumed
	}
}

// Cancel stops the order. It reports false for an order already cancelled.
// The caller releases the reservation and removes the work orders.
func (o *Order) Cancel(p Progress, at time.Time) (bool, error) {
	if o.status == Cancelled {
		return false, nil
	}
	if p.Done > 0 {
		return false, fmt.Errorf("%w: %d of %d work orders done", ErrCannotCancel, p.Done, p.Total)
	}

	o.status = Cancelled
	o.availability = Released
	o.record(EventCancelled, at)
	return true, nil
}

// MarkDeleted checks that the order may be removed and records EventDeleted.
func (o *Order) MarkDeleted(p Progress, at time.Time) error {
	if p.Started > 0 {
		return fmt.Errorf("%w: %d work orders started", ErrOrderNotDeletable, p.Started)
	}
	if o.availability == Reserved {
		o.availability = Released
	}
	o.record(EventDeleted, at)
	return nil
}

// UpdateDetails edits the customer and delivery date, then re-derives the status.
func (o *Order) UpdateDetails(customer string, deliveryOn kernel.Date, p Progress, today kernel.Date, at time.Time) error {
	var draft Order
	if err := errors.Join(
		draft.setCustomer(customer),
		draft.setDates(o.placedOn, deliveryOn),
	); err != nil {
		return err
	}
	o.customer = draft.customer
	o.deliveryOn = draft.deliveryOn
	o.RefreshStatus(p, today, at)
	return nil
}

// PullEvents returns the events recorded since the last call and forgets them.
func (o *Order) PullEvents() []Event {
	out := o.events
	o.events = nil
	return out
}

func (o *Order) record(t EventType, at time.Time) {
	o.events = append(o.events, Event{
		Type:       t,
		OrderID:    o.id,
		Status:     o.status,
		OccurredAt: at,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer string) error {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return ErrCustomerIsRequired
	}
	o.customer = customer
	return nil
}

func (o *Order) setProduct(product string) error {
	product = strings.TrimSpace(product)
	if product == "" {
		return ErrProductIsRequired
	}
	o.product = product
	return nil
}

func (o *Order) setBomID(bomID kernel.UUID) error {
	if err := bomID.Validate(); err != nil {
		return err
	}
	o.bomID = bomID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > kernel.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, kernel.MaxQuantity)
	}
	o.quantity = quantity
	return nil
}

// setDates requires the delivery date to be on or after the placement date.
func (o *Order) setDates(placedOn, deliveryOn kernel.Date) error {
	if err := errors.Join(placedOn.Validate(), deliveryOn.Validate()); err != nil {
		return err
	}
	if deliveryOn.Before(placedOn) {
		return fmt.Errorf("%w: %s is before placement on %s", ErrDeliveryBeforePlaced, deliveryOn, placedOn)
	}
	o.placedOn = placedOn
	o.deliveryOn = deliveryOn
	return nil
}
