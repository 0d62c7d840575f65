package workorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder or RestoreWorkOrder constructor")
	ErrQuantityIsInvalid         = errs.NewValueIsInvalidError("quantity")
)

// WorkOrder produces quantity units of its order's product at one work center.
type WorkOrder struct {
	id           kernel.UUID
	orderID      kernel.UUID
	workCenterID kernel.UUID
	operatorID   kernel.UUID
	quantity     int
	status       Status
	startedAt    *time.Time
	finishedAt   *time.Time
	comments     string
	guard        guard.ConstructorGuard
}

// NewWorkOrder creates a Planned work order.
func NewWorkOrder(
	id, orderID, workCenterID, operatorID kernel.UUID,
	quantity int,
	comments string,
) (*WorkOrder, error) {
	return RestoreWorkOrder(id, orderID, workCenterID, operatorID, quantity, Planned, nil, nil, comments)
}

// RestoreWorkOrder rebuilds a work order from storage. Timestamps must match
// the status: started work orders carry a start, Done ones also an end.
func RestoreWorkOrder(
	id, orderID, workCenterID, operatorID kernel.UUID,
	quantity int,
	status Status,
	startedAt, finishedAt *time.Time,
	comments string,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		comments: strings.TrimSpace(comments),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		workCenterID.Validate(),
		operatorID.Validate(),
		wo.setQuantity(quantity),
		wo.setStatus(status, startedAt, finishedAt),
	); err != nil {
		return nil, err
	}

	wo.id = id
	wo.orderID = orderID
	wo.workCenterID = workCenterID
	wo.operatorID = operatorID
	return wo, nil
}

func (w *WorkOrder) Validate() error {
	if w == nil {
		return ErrWorkOrderIsNotConstructed
	}
	return w.guard.Validate(ErrWorkOrderIsNotConstructed)
}

func (w *WorkOrder) ID() kernel.UUID           { return w.id }
func (w *WorkOrder) OrderID() kernel.UUID      { return w.orderID }
func (w *WorkOrder) WorkCenterID() kernel.UUID { return w.workCenterID }
func (w *WorkOrder) OperatorID() kernel.UUID   { return w.operatorID }
func (w *WorkOrder) Quantity() int             { return w.quantity }
func (w *WorkOrder) Status() Status            { return w.status }
func (w *WorkOrder) StartedAt() *time.Time     { return w.startedAt }
func (w *WorkOrder) FinishedAt() *time.Time    { return w.finishedAt }
func (w *WorkOrder) Comments() string          { return w.comments }

// Duration is the time between start and end, zero until the work order is Done.
func (w *WorkOrder) Duration() time.Duration {
	if w.startedAt == nil || w.finishedAt == nil {
		return 0
	}
	return w.finishedAt.Sub(*w.startedAt)
}

// OccupiesCapacity reports whether the work order counts toward its center's load.
func (w *WorkOrder) OccupiesCapacity() bool {
	return w.status.OccupiesCapacity()
}

// ReentersCapacity reports whether moving to target would make the work
// order count toward the load again, which requires a free slot.
func (w *WorkOrder) ReentersCapacity(target Status) bool {
	return !w.status.OccupiesCapacity() && target.OccupiesCapacity() && w.status.CanTransitionTo(target)
}

// TransitionTo applies one step of the transition table. It reports false
// without error for the Done -> Done no-op.
func (w *WorkOrder) TransitionTo(target Status, at time.Time) (bool, error) {
	if w.status == Done && target == Done {
		return false, nil
	}
	if !w.status.CanTransitionTo(target) {
		return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.status, target)
	}

	switch {
	case w.status == Planned && target == InProgress:
		started := at
		w.startedAt = &started
	case target == Done:
		finished := at
		w.finishedAt = &finished
	}

	w.status = target
	return true, nil
}

// CanCancel reports whether the work order can still be withdrawn.
func (w *WorkOrder) CanCancel() error {
	if w.status != Planned {
		return fmt.Errorf("%w: cannot cancel a %s work order", ErrInvalidTransition, w.status)
	}
	return nil
}

func (w *WorkOrder) setQuantity(quantity int) error {
	if quantity <= 0 || quantity > kernel.MaxQuantity {
		return fmt.Errorf("%w: %d is outside 1..%d", ErrQuantityIsInvalid, quantity, kernel.MaxQuantity)
	}
	w.quantity = quantity
	return nil
}

func (w *WorkOrder) setStatus(status Status, startedAt, finishedAt *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	started := status != Planned
	if started != (startedAt != nil) {
		return errs.NewValueIsInvalidErrorWithCause("started at", fmt.Errorf("inconsistent with status %s", status))
	}
	if (status == Done) != (finishedAt != nil) {
		return errs.NewValueIsInvalidErrorWithCause("finished at", fmt.Errorf("inconsistent with status %s", status))
	}

	w.status = status
	w.startedAt = startedAt
	w.finishedAt = finishedAt
	return nil
}
