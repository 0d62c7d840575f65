package commands

import (
	"errors"
	"fmt"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var ErrReplenishStockCommandIsNotConstructed = errors.New(
	"ReplenishStockCommand must be created via NewReplenishStockCommand constructor",
)

// ReplenishStockCommand adds received units to a stock item's on-hand quantity.
type ReplenishStockCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewReplenishStockCommand(itemID kernel.UUID, quantity int) (ReplenishStockCommand, error) {
	cmd := ReplenishStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		cmd.setQuantity(quantity),
	); err != nil {
		return ReplenishStockCommand{}, err
	}

	cmd.itemID = itemID
	return cmd, nil
}

func (c ReplenishStockCommand) Validate() error {
	return c.guard.Validate(ErrReplenishStockCommandIsNotConstructed)
}

func (c ReplenishStockCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c ReplenishStockCommand) Quantity() int {
	return c.quantity
}

func (c *ReplenishStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
