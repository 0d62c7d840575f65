package commands

import (
	"errors"
	"strings"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// UpdateOrderDetailsCommand edits the customer and the delivery date.
// Quantity and bill of material stay fixed because the reservation depends on them.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customer   string
	deliveryOn kernel.Date

	guard guard.ConstructorGuard
}

func NewUpdateOrderDetailsCommand(orderID kernel.UUID, customer string, deliveryOn kernel.Date) (UpdateOrderDetailsCommand, error) {
	customer = strings.TrimSpace(customer)

	var customerErr error
	if customer == "" {
		customerErr = order.ErrCustomerIsRequired
	}

	if err := errors.Join(orderID.Validate(), customerErr, deliveryOn.Validate()); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	return UpdateOrderDetailsCommand{
		orderID:    orderID,
		customer:   customer,
		deliveryOn: deliveryOn,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderDetailsCommand) Customer() string {
	return c.customer
}

func (c UpdateOrderDetailsCommand) DeliveryOn() kernel.Date {
	return c.deliveryOn
}
