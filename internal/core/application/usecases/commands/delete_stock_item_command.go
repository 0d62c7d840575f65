package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrDeleteStockItemCommandIsNotConstructed = errors.New(
	"DeleteStockItemCommand must be created via NewDeleteStockItemCommand constructor",
)

// DeleteStockItemCommand removes a stock item that no BOM component or
// reservation references.
type DeleteStockItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteStockItemCommand(itemID kernel.UUID) (DeleteStockItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return DeleteStockItemCommand{}, err
	}

	return DeleteStockItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteStockItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStockItemCommandIsNotConstructed)
}

func (c DeleteStockItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
