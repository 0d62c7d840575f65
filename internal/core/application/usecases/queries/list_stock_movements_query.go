package queries

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var ErrListStockMovementsQueryIsNotConstructed = errors.New(
	"ListStockMovementsQuery must be created via NewListStockMovementsQuery constructor",
)

// ListStockMovementsQuery reads the newest movements of one stock item.
type ListStockMovementsQuery struct {
	itemID kernel.UUID
	limit  int

	guard guard.ConstructorGuard
}

func NewListStockMovementsQuery(itemID kernel.UUID, limit int) (ListStockMovementsQuery, error) {
	if err := itemID.Validate(); err != nil {
		return ListStockMovementsQuery{}, err
	}
	if limit < 1 || limit > 1000 {
		return ListStockMovementsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, 1000)
	}

	return ListStockMovementsQuery{
		itemID: itemID,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListStockMovementsQuery) Validate() error {
	return q.guard.Validate(ErrListStockMovementsQueryIsNotConstructed)
}

func (q ListStockMovementsQuery) ItemID() kernel.UUID { return q.itemID }
func (q ListStockMovementsQuery) Limit() int          { return q.limit }

// StockMovementResponse is one ledger entry. OrderID is nil for replenishments.
type StockMovementResponse struct {
	ID         kernel.UUID
	OrderID    *kernel.UUID
	Kind       string
	Quantity   int
	OccurredAt time.Time
}
