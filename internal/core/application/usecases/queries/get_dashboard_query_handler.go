package queries

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/pkg/clock"

	"gorm.io/gorm"
)

type GetDashboardQueryHandler struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewGetDashboardQueryHandler(db *gorm.DB, clk clock.Clock) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db, clock: clk}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (DashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardResponse{}, err
	}

	today := kernel.DateOf(h.clock.Now()).Time()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			CASE
				WHEN status NOT IN (?, ?) AND delivery_on < ? THEN ?
				ELSE status
			END AS effective,
			count(*)
		FROM orders
		GROUP BY effective
	`, int(order.Done), int(order.Cancelled), today, int(order.Delayed)).Rows()
	if err != nil {
		return DashboardResponse{}, err
	}
	defer rows.Close()

	var resp DashboardResponse
	for rows.Next() {
		var status, n int
		if err = rows.Scan(&status, &n); err != nil {
			return DashboardResponse{}, err
		}

		resp.Total += n
		//nolint:exhaustive // Unknown rows only count toward the total
		switch order.Status(status) {
		case order.Draft:
			resp.Draft += n
		case order.InProgress:
			resp.InProgress += n
		case order.Done:
			resp.Done += n
		case order.Delayed:
			resp.Delayed += n
		case order.Cancelled:
			resp.Cancelled += n
		}
	}

	if err = rows.Err(); err != nil {
		return DashboardResponse{}, err
	}

	return resp, nil
}
