package commands

import (
	"errors"
	"fmt"
	"strings"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/stock"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var ErrCreateStockItemCommandIsNotConstructed = errors.New(
	"CreateStockItemCommand must be created via NewCreateStockItemCommand constructor",
)

// CreateStockItemCommand registers a new stock item with its opening on-hand quantity.
//
// Example:
//
//	id := kernel.NewUUID()
//	cmd, err := NewCreateStockItemCommand(id, "Screw A", stock.Component, 100)
//	if err != nil {
//	    return fmt.Errorf("invalid stock item: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateStockItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	name   string
	kind   stock.Kind
	onHand int

	guard guard.ConstructorGuard
}

func NewCreateStockItemCommand(itemID kernel.UUID, name string, kind stock.Kind, onHand int) (CreateStockItemCommand, error) {
	cmd := CreateStockItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		cmd.setName(name),
		kind.Validate(),
		cmd.setOnHand(onHand),
	); err != nil {
		return CreateStockItemCommand{}, err
	}

	cmd.itemID = itemID
	cmd.kind = kind
	return cmd, nil
}

func (c CreateStockItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateStockItemCommandIsNotConstructed)
}

func (c CreateStockItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateStockItemCommand) Name() string {
	return c.name
}

func (c CreateStockItemCommand) Kind() stock.Kind {
	return c.kind
}

func (c CreateStockItemCommand) OnHand() int {
	return c.onHand
}

func (c *CreateStockItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return stock.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStockItemCommand) setOnHand(onHand int) error {
	if onHand < 0 {
		return errs.NewValueIsInvalidErrorWithCause("on hand", fmt.Errorf("%d is negative", onHand))
	}

	c.onHand = onHand
	return nil
}
