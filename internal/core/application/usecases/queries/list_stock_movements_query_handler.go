package queries

import (
	"context"

	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListStockMovementsQueryHandler struct {
	db *gorm.DB
}

func NewListStockMovementsQueryHandler(db *gorm.DB) ListStockMovementsQueryHandler {
	return ListStockMovementsQueryHandler{db: db}
}

// Handle returns movements newest first. An unknown item is not found rather
// than an empty history.
func (h ListStockMovementsQueryHandler) Handle(
	ctx context.Context,
	query ListStockMovementsQuery,
) ([]StockMovementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	itemID := query.ItemID().String()

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM stock_items WHERE id = ?)`, itemID).Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("stock item", itemID)
	}

	rows, err := db.Raw(`
		SELECT
			id,
			order_id,
			kind,
			quantity,
			occurred_at
		FROM stock_movements
		WHERE stock_item_id = ?
		ORDER BY occurred_at DESC, id
		LIMIT ?
	`, itemID, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]StockMovementResponse, 0)
	for rows.Next() {
		var m StockMovementResponse
		var id uuid.UUID
		var orderID uuid.NullUUID

		if err = rows.Scan(&id, &orderID, &m.Kind, &m.Quantity, &m.OccurredAt); err != nil {
			return nil, err
		}

		if m.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if m.OrderID, err = toOptionalUUID(orderID); err != nil {
			return nil, err
		}
		m.OccurredAt = m.OccurredAt.UTC()
		movements = append(movements, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}
