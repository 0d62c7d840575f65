package bom

import (
	"errors"
	"fmt"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrComponentIsNotConstructed = errors.New("Component must be created via NewComponent constructor")

// Component is one line of a bill of material.
type Component struct {
	itemID  kernel.UUID
	perUnit int
	guard   guard.ConstructorGuard
}

func NewComponent(itemID kernel.UUID, perUnit int) (Component, error) {
	if err := itemID.Validate(); err != nil {
		return Component{}, fmt.Errorf("%w: %w", ErrInvalidComponent, err)
	}
	if perUnit <= 0 || perUnit > kernel.MaxQuantity {
		return Component{}, fmt.Errorf("%w: %d per unit for item %s", ErrInvalidQuantity, perUnit, itemID)
	}

	return Component{
		itemID:  itemID,
		perUnit: perUnit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c Component) Validate() error {
	return c.guard.Validate(ErrComponentIsNotConstructed)
}

func (c Component) ItemID() kernel.UUID {
	return c.itemID
}

func (c Component) PerUnit() int {
	return c.perUnit
}

// Requirement is the total quantity of one stock item needed for a production quantity.
type Requirement struct {
	ItemID   kernel.UUID
	Quantity int
}
