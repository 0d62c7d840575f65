package queries

import (
	"context"
	"database/sql"
	"errors"

	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetBomQueryHandler struct {
	db *gorm.DB
}

func NewGetBomQueryHandler(db *gorm.DB) GetBomQueryHandler {
	return GetBomQueryHandler{db: db}
}

// Handle reads a live bill of material. Soft-deleted versions are not found.
func (h GetBomQueryHandler) Handle(ctx context.Context, query GetBomQuery) (BomResponse, error) {
	if err := query.Validate(); err != nil {
		return BomResponse{}, err
	}

	db := h.db.WithContext(ctx)
	bomID := query.BomID().String()

	resp := BomResponse{ID: query.BomID(), Quantity: query.Quantity()}
	var previousID uuid.NullUUID

	err := db.Raw(`
		SELECT name, version, previous_id
		FROM boms
		WHERE id = ? AND deleted_at IS NULL
	`, bomID).Row().Scan(&resp.Name, &resp.Version, &previousID)
	if errors.Is(err, sql.ErrNoRows) {
		return BomResponse{}, errs.NewObjectNotFoundError("bill of material", bomID)
	}
	if err != nil {
		return BomResponse{}, err
	}
	if resp.PreviousID, err = toOptionalUUID(previousID); err != nil {
		return BomResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT
			c.stock_item_id,
			s.name,
			c.per_unit,
			s.on_hand - s.reserved
		FROM bom_components c
		JOIN stock_items s ON s.id = c.stock_item_id
		WHERE c.bom_id = ?
		ORDER BY c.position
	`, bomID).Rows()
	if err != nil {
		return BomResponse{}, err
	}
	defer rows.Close()

	resp.Components = make([]BomComponentResponse, 0)
	for rows.Next() {
		var c BomComponentResponse
		var itemID uuid.UUID

		if err = rows.Scan(&itemID, &c.StockItemName, &c.PerUnit, &c.Available); err != nil {
			return BomResponse{}, err
		}
		if c.StockItemID, err = toKernelUUID(itemID); err != nil {
			return BomResponse{}, err
		}
		c.Required = c.PerUnit * query.Quantity()
		resp.Components = append(resp.Components, c)
	}

	if err = rows.Err(); err != nil {
		return BomResponse{}, err
	}

	return resp, nil
}
