package commands

import (
	"errors"
	"fmt"
	"strings"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var ErrScheduleWorkOrderCommandIsNotConstructed = errors.New(
	"ScheduleWorkOrderCommand must be created via NewScheduleWorkOrderCommand constructor",
)

// ScheduleWorkOrderCommand plans part of an order at a work center.
// A zero quantity stands for everything of the order not yet covered by
// other work orders.
//
// Example:
//
//	cmd, err := NewScheduleWorkOrderCommand(kernel.NewUUID(), orderID, pressID, operatorID, 0, "first batch")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, workcenter.ErrCapacityExceeded) {
//	    // Press is full, try another center.
//	}
type ScheduleWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID  kernel.UUID
	orderID      kernel.UUID
	workCenterID kernel.UUID
	operatorID   kernel.UUID
	quantity     int
	comments     string

	guard guard.ConstructorGuard
}

func NewScheduleWorkOrderCommand(
	workOrderID, orderID, workCenterID, operatorID kernel.UUID,
	quantity int,
	comments string,
) (ScheduleWorkOrderCommand, error) {
	if err := errors.Join(
		workOrderID.Validate(),
		orderID.Validate(),
		workCenterID.Validate(),
		operatorID.Validate(),
	); err != nil {
		return ScheduleWorkOrderCommand{}, err
	}
	if quantity < 0 {
		return ScheduleWorkOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is negative", quantity))
	}

	return ScheduleWorkOrderCommand{
		workOrderID:  workOrderID,
		orderID:      orderID,
		workCenterID: workCenterID,
		operatorID:   operatorID,
		quantity:     quantity,
		comments:     strings.TrimSpace(comments),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ScheduleWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrScheduleWorkOrderCommandIsNotConstructed)
}

func (c ScheduleWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

func (c ScheduleWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ScheduleWorkOrderCommand) WorkCenterID() kernel.UUID {
	return c.workCenterID
}

func (c ScheduleWorkOrderCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Quantity returns the requested product units, zero when not given.
func (c ScheduleWorkOrderCommand) Quantity() int {
	return c.quantity
}

func (c ScheduleWorkOrderCommand) Comments() string {
	return c.comments
}
