package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListStockItemsQueryHandler struct {
	db *gorm.DB
}

func NewListStockItemsQueryHandler(db *gorm.DB) ListStockItemsQueryHandler {
	return ListStockItemsQueryHandler{db: db}
}

func (h ListStockItemsQueryHandler) Handle(ctx context.Context, query ListStockItemsQuery) ([]StockItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT ` + stockItemColumns + ` FROM stock_items ORDER BY name, id`,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]StockItemResponse, 0)
	for rows.Next() {
		item, scanErr := scanStockItem(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
