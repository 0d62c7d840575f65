package queries

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrGetStockItemQueryIsNotConstructed = errors.New(
	"GetStockItemQuery must be created via NewGetStockItemQuery constructor",
)

// GetStockItemQuery reads one stock item with its available quantity.
type GetStockItemQuery struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetStockItemQuery(itemID kernel.UUID) (GetStockItemQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetStockItemQuery{}, err
	}

	return GetStockItemQuery{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetStockItemQuery) Validate() error {
	return q.guard.Validate(ErrGetStockItemQueryIsNotConstructed)
}

func (q GetStockItemQuery) ItemID() kernel.UUID {
	return q.itemID
}

// StockItemResponse is the read model of a stock item. Available is on hand
// minus reserved.
type StockItemResponse struct {
	ID        kernel.UUID
	Name      string
	Kind      string
	OnHand    int
	Reserved  int
	Available int
}
