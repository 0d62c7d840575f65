package queries

import (
	"context"
	"database/sql"

	"manufacturing/internal/core/domain/model/workcenter"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListWorkOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListWorkOrdersQueryHandler(db *gorm.DB) ListWorkOrdersQueryHandler {
	return ListWorkOrdersQueryHandler{db: db}
}

// Handle returns work orders oldest first. Filtering by an unknown work
// center is not found rather than an empty list.
func (h ListWorkOrdersQueryHandler) Handle(ctx context.Context, query ListWorkOrdersQuery) ([]WorkOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	centerID := query.WorkCenterID()
	if centerID == nil {
		return selectWorkOrders(db, "TRUE")
	}

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM work_centers WHERE id = ?)`, centerID.String()).Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("work center", centerID.String())
	}

	return selectWorkOrders(db, "wo.work_center_id = ?", centerID.String())
}

// selectWorkOrders reads the work orders matching where, with the name and
// rate of their work center, in scheduling order.
func selectWorkOrders(db *gorm.DB, where string, args ...any) ([]WorkOrderResponse, error) {
	rows, err := db.Raw(`
		SELECT
			wo.id,
			wo.order_id,
			wo.work_center_id,
			wc.name,
			wc.cost_per_hour,
			wo.operator_id,
			wo.quantity,
			wo.status,
			wo.started_at,
			wo.finished_at,
			wo.comments
		FROM work_orders wo
		JOIN work_centers wc ON wc.id = wo.work_center_id
		WHERE `+where+`
		ORDER BY wo.created_at, wo.id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workOrders := make([]WorkOrderResponse, 0)
	for rows.Next() {
		var wo WorkOrderResponse
		var id, orderID, centerID, operatorID uuid.UUID
		var costPerHour decimal.Decimal
		var status int
		var startedAt, finishedAt sql.NullTime

		err = rows.Scan(
			&id,
			&orderID,
			&centerID,
			&wo.WorkCenterName,
			&costPerHour,
			&operatorID,
			&wo.Quantity,
			&status,
			&startedAt,
			&finishedAt,
			&wo.Comments,
		)
		if err != nil {
			return nil, err
		}

		if wo.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if wo.OrderID, err = toKernelUUID(orderID); err != nil {
			return nil, err
		}
		if wo.WorkCenterID, err = toKernelUUID(centerID); err != nil {
			return nil, err
		}
		if wo.OperatorID, err = toKernelUUID(operatorID); err != nil {
			return nil, err
		}
		wo.Status = workorder.Status(status)
		wo.StartedAt = toOptionalTime(startedAt)
		wo.FinishedAt = toOptionalTime(finishedAt)

		wo.LaborCost = decimal.Zero
		if wo.StartedAt != nil && wo.FinishedAt != nil {
			wo.LaborCost = workcenter.LaborCost(costPerHour, wo.FinishedAt.Sub(*wo.StartedAt))
		}
		workOrders = append(workOrders, wo)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workOrders, nil
}
