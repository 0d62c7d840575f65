package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workcenter"
	"manufacturing/internal/core/domain/model/workorder"
)

type WorkCenterRepository interface {
	Add(ctx context.Context, wc *workcenter.WorkCenter) error
	Update(ctx context.Context, wc *workcenter.WorkCenter) error
	Get(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error)

	// GetForUpdate locks the work center row. Admission checks hold this lock
	// while counting load so concurrent scheduling cannot overshoot capacity.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error)

	// Delete fails with workcenter.ErrWorkCenterInUse while work orders reference it.
	Delete(ctx context.Context, id kernel.UUID) error
}

type WorkOrderRepository interface {
	Add(ctx context.Context, wo *workorder.WorkOrder) error
	Update(ctx context.Context, wo *workorder.WorkOrder) error
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetForUpdate locks the work order row. Callers lock the owning order first.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*workorder.WorkOrder, error)

	// CountActiveByWorkCenter counts the Planned and InProgress work orders
	// assigned to workCenterID.
	CountActiveByWorkCenter(ctx context.Context, workCenterID kernel.UUID) (int64, error)

	Delete(ctx context.Context, id kernel.UUID) error
	DeleteByOrder(ctx context.Context, orderID kernel.UUID) error
}
