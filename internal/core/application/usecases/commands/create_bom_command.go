package commands

import (
	"errors"
	"strings"

	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrCreateBomCommandIsNotConstructed = errors.New(
	"CreateBomCommand must be created via NewCreateBomCommand constructor",
)

// CreateBomCommand registers version 1 of a bill of material.
//
// Example:
//
//	screw, _ := bom.NewComponent(screwID, 2)
//	plate, _ := bom.NewComponent(plateID, 1)
//	cmd, err := NewCreateBomCommand(kernel.NewUUID(), "Widget", []bom.Component{screw, plate})
type CreateBomCommand struct { //nolint:recvcheck //using for validation
	bomID      kernel.UUID
	name       string
	components []bom.Component

	guard guard.ConstructorGuard
}

func NewCreateBomCommand(bomID kernel.UUID, name string, components []bom.Component) (CreateBomCommand, error) {
	cmd := CreateBomCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bomID.Validate(),
		cmd.setName(name),
		cmd.setComponents(components),
	); err != nil {
		return CreateBomCommand{}, err
	}

	cmd.bomID = bomID
	return cmd, nil
}

func (c CreateBomCommand) Validate() error {
	return c.guard.Validate(ErrCreateBomCommandIsNotConstructed)
}

func (c CreateBomCommand) BomID() kernel.UUID {
	return c.bomID
}

func (c CreateBomCommand) Name() string {
	return c.name
}

func (c CreateBomCommand) Components() []bom.Component {
	return c.components
}

func (c *CreateBomCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return bom.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateBomCommand) setComponents(components []bom.Component) error {
	if len(components) == 0 {
		return bom.ErrComponentsAreMissing
	}

	c.components = append([]bom.Component(nil), components...)
	return nil
}
