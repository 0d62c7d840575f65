package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/pkg/guard"
)

var ErrTransitionWorkOrderCommandIsNotConstructed = errors.New(
	"TransitionWorkOrderCommand must be created via NewTransitionWorkOrderCommand constructor",
)

// TransitionWorkOrderCommand moves a work order one step through its lifecycle.
type TransitionWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	target      workorder.Status

	guard guard.ConstructorGuard
}

func NewTransitionWorkOrderCommand(workOrderID kernel.UUID, target workorder.Status) (TransitionWorkOrderCommand, error) {
	if err := errors.Join(workOrderID.Validate(), target.Validate()); err != nil {
		return TransitionWorkOrderCommand{}, err
	}

	return TransitionWorkOrderCommand{
		workOrderID: workOrderID,
		target:      target,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionWorkOrderCommandIsNotConstructed)
}

func (c TransitionWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

func (c TransitionWorkOrderCommand) Target() workorder.Status {
	return c.target
}
