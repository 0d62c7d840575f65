package queries

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var ErrGetBomQueryIsNotConstructed = errors.New(
	"GetBomQuery must be created via NewGetBomQuery constructor",
)

// GetBomQuery resolves a bill of material and its requirements for quantity
// products.
type GetBomQuery struct {
	bomID    kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewGetBomQuery(bomID kernel.UUID, quantity int) (GetBomQuery, error) {
	if err := bomID.Validate(); err != nil {
		return GetBomQuery{}, err
	}
	if quantity < 1 {
		return GetBomQuery{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	return GetBomQuery{
		bomID:    bomID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetBomQuery) Validate() error {
	return q.guard.Validate(ErrGetBomQueryIsNotConstructed)
}

func (q GetBomQuery) BomID() kernel.UUID { return q.bomID }
func (q GetBomQuery) Quantity() int      { return q.quantity }

type BomResponse struct {
	ID         kernel.UUID
	Name       string
	Version    int
	PreviousID *kernel.UUID
	Quantity   int
	Components []BomComponentResponse
}

// BomComponentResponse is one component line. Required is PerUnit times the
// queried quantity; Available is what the item could reserve right now.
type BomComponentResponse struct {
	StockItemID   kernel.UUID
	StockItemName string
	PerUnit       int
	Required      int
	Available     int
}
