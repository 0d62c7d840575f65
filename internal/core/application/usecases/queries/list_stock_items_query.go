package queries

import (
	"errors"

	"manufacturing/internal/pkg/guard"
)

var ErrListStockItemsQueryIsNotConstructed = errors.New(
	"ListStockItemsQuery must be created via NewListStockItemsQuery constructor",
)

// ListStockItemsQuery reads every stock item ordered by name.
type ListStockItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewListStockItemsQuery() ListStockItemsQuery {
	return ListStockItemsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrListStockItemsQueryIsNotConstructed)
}
