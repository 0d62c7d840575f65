package queries

import (
	"context"
	"database/sql"
	"errors"

	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const stockItemColumns = `id, name, kind, on_hand, reserved`

type GetStockItemQueryHandler struct {
	db *gorm.DB
}

func NewGetStockItemQueryHandler(db *gorm.DB) GetStockItemQueryHandler {
	return GetStockItemQueryHandler{db: db}
}

func (h GetStockItemQueryHandler) Handle(ctx context.Context, query GetStockItemQuery) (StockItemResponse, error) {
	if err := query.Validate(); err != nil {
		return StockItemResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT `+stockItemColumns+` FROM stock_items WHERE id = ?`,
		query.ItemID().String(),
	).Row()

	item, err := scanStockItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return StockItemResponse{}, errs.NewObjectNotFoundError("stock item", query.ItemID().String())
	}
	return item, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStockItem(row rowScanner) (StockItemResponse, error) {
	var item StockItemResponse
	var id uuid.UUID

	if err := row.Scan(&id, &item.Name, &item.Kind, &item.OnHand, &item.Reserved); err != nil {
		return StockItemResponse{}, err
	}

	itemID, err := toKernelUUID(id)
	if err != nil {
		return StockItemResponse{}, err
	}
	item.ID = itemID
	item.Available = item.OnHand - item.Reserved
	return item, nil
}
