package queries

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/pkg/clock"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewListOrdersQueryHandler(db *gorm.DB, clk clock.Clock) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, clock: clk}
}

// Handle returns every order by delivery date, earliest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSnapshotResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := kernel.DateOf(h.clock.Now())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product,
			status,
			delivery_on
		FROM orders
		ORDER BY delivery_on, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSnapshotResponse, 0)
	for rows.Next() {
		var o OrderSnapshotResponse
		var id uuid.UUID
		var status int
		var deliveryOn time.Time

		if err = rows.Scan(&id, &o.Product, &status, &deliveryOn); err != nil {
			return nil, err
		}
		if o.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		o.DeliveryOn = kernel.DateOf(deliveryOn)
		o.Status = order.EffectiveStatus(order.Status(status), o.DeliveryOn, today)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
