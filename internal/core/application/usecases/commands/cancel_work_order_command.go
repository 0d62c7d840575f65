package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrCancelWorkOrderCommandIsNotConstructed = errors.New(
	"CancelWorkOrderCommand must be created via NewCancelWorkOrderCommand constructor",
)

// CancelWorkOrderCommand withdraws a work order that has not started.
type CancelWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelWorkOrderCommand(workOrderID kernel.UUID) (CancelWorkOrderCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return CancelWorkOrderCommand{}, err
	}

	return CancelWorkOrderCommand{
		workOrderID: workOrderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CancelWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelWorkOrderCommandIsNotConstructed)
}

func (c CancelWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}
