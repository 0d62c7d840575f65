package commands

import (
	"errors"
	"fmt"
	"strings"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand requests a manufacturing order for quantity units of
// product built from the bill of material bomID.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), "ACME", "Widget", widgetBomID, 4,
//	    kernel.DateOf(time.Now()), kernel.NewDate(2026, time.June, 1))
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, stock.ErrInsufficientStock) {
//	    // nothing was reserved
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customer   string
	product    string
	bomID      kernel.UUID
	quantity   int
	placedOn   kernel.Date
	deliveryOn kernel.Date

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customer, product string,
	bomID kernel.UUID,
	quantity int,
	placedOn, deliveryOn kernel.Date,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		orderID:    orderID,
		customer:   strings.TrimSpace(customer),
		product:    strings.TrimSpace(product),
		bomID:      bomID,
		quantity:   quantity,
		placedOn:   placedOn,
		deliveryOn: deliveryOn,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		bomID.Validate(),
		cmd.validateNames(),
		cmd.validateQuantity(),
		cmd.validateDates(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) Customer() string {
	return c.customer
}

func (c PlaceOrderCommand) Product() string {
	return c.product
}

func (c PlaceOrderCommand) BomID() kernel.UUID {
	return c.bomID
}

func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

func (c PlaceOrderCommand) PlacedOn() kernel.Date {
	return c.placedOn
}

func (c PlaceOrderCommand) DeliveryOn() kernel.Date {
	return c.deliveryOn
}

func (c PlaceOrderCommand) validateNames() error {
	var list []error
	if c.customer == "" {
		list = append(list, order.ErrCustomerIsRequired)
	}
	if c.product == "" {
		list = append(list, order.ErrProductIsRequired)
	}
	return errors.Join(list...)
}

func (c PlaceOrderCommand) validateQuantity() error {
	if c.quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", c.quantity))
	}
	return nil
}

func (c PlaceOrderCommand) validateDates() error {
	if err := errors.Join(c.placedOn.Validate(), c.deliveryOn.Validate()); err != nil {
		return err
	}
	if c.deliveryOn.Before(c.placedOn) {
		return fmt.Errorf("%w: %s is before %s", order.ErrDeliveryBeforePlaced, c.deliveryOn, c.placedOn)
	}
	return nil
}
