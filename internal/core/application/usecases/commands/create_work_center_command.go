package commands

import (
	"errors"
	"fmt"
	"strings"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workcenter"
	"manufacturing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateWorkCenterCommandIsNotConstructed = errors.New(
	"CreateWorkCenterCommand must be created via NewCreateWorkCenterCommand constructor",
)

// CreateWorkCenterCommand registers a work center that runs at most capacity
// Planned or InProgress work orders at once.
type CreateWorkCenterCommand struct { //nolint:recvcheck //using for validation
	centerID    kernel.UUID
	name        string
	costPerHour decimal.Decimal
	capacity    int

	guard guard.ConstructorGuard
}

func NewCreateWorkCenterCommand(
	centerID kernel.UUID,
	name string,
	costPerHour decimal.Decimal,
	capacity int,
) (CreateWorkCenterCommand, error) {
	cmd := CreateWorkCenterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		centerID.Validate(),
		cmd.setName(name),
		cmd.setCostPerHour(costPerHour),
		cmd.setCapacity(capacity),
	); err != nil {
		return CreateWorkCenterCommand{}, err
	}

	cmd.centerID = centerID
	return cmd, nil
}

func (c CreateWorkCenterCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkCenterCommandIsNotConstructed)
}

func (c CreateWorkCenterCommand) CenterID() kernel.UUID {
	return c.centerID
}

func (c CreateWorkCenterCommand) Name() string {
	return c.name
}

func (c CreateWorkCenterCommand) CostPerHour() decimal.Decimal {
	return c.costPerHour
}

func (c CreateWorkCenterCommand) Capacity() int {
	return c.capacity
}

func (c *CreateWorkCenterCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return workcenter.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateWorkCenterCommand) setCostPerHour(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return fmt.Errorf("%w: %s is negative", workcenter.ErrInvalidCost, cost)
	}

	c.costPerHour = cost
	return nil
}

func (c *CreateWorkCenterCommand) setCapacity(capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("%w: %d is less than 1", workcenter.ErrInvalidCapacity, capacity)
	}

	c.capacity = capacity
	return nil
}
