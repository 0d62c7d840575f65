package queries

import (
	"context"

	"manufacturing/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadSQL counts the work orders occupying a work center slot. Blocked work
// orders free their slot.
const loadSQL = `(SELECT count(*) FROM work_orders wo WHERE wo.work_center_id = wc.id AND wo.status IN (?, ?))`

type ListWorkCentersQueryHandler struct {
	db *gorm.DB
}

func NewListWorkCentersQueryHandler(db *gorm.DB) ListWorkCentersQueryHandler {
	return ListWorkCentersQueryHandler{db: db}
}

func (h ListWorkCentersQueryHandler) Handle(
	ctx context.Context,
	query ListWorkCentersQuery,
) ([]WorkCenterResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			wc.id,
			wc.name,
			wc.cost_per_hour,
			wc.capacity,
			wc.downtime_hours,
			`+loadSQL+`
		FROM work_centers wc
		ORDER BY wc.name, wc.id
	`, int(workorder.Planned), int(workorder.InProgress)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	centers := make([]WorkCenterResponse, 0)
	for rows.Next() {
		var wc WorkCenterResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &wc.Name, &wc.CostPerHour, &wc.Capacity, &wc.DowntimeHours, &wc.Load); err != nil {
			return nil, err
		}
		if wc.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		centers = append(centers, wc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return centers, nil
}
