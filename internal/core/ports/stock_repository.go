package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/stock"
)

// StockItemRepository persists stock items together with the movements they record.
type StockItemRepository interface {
	// Add inserts the item and any movements pulled from it.
	Add(ctx context.Context, item *stock.Item) error

	// Update writes the counters and appends any movements pulled from it.
	Update(ctx context.Context, item *stock.Item) error

	Get(ctx context.Context, id kernel.UUID) (*stock.Item, error)

	// GetForUpdate locks the rows of ids in ascending id order and returns
	// them in that order. A missing id fails the whole call.
	GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*stock.Item, error)

	// Delete removes an item. Items referenced by a bill of material or a
	// reservation cannot be removed.
	Delete(ctx context.Context, id kernel.UUID) error
}

// ReservationRepository persists per-order reservations.
type ReservationRepository interface {
	// Save inserts or updates each reservation.
	Save(ctx context.Context, reservations ...*stock.Reservation) error

	// GetByOrderForUpdate locks and returns every reservation of orderID.
	GetByOrderForUpdate(ctx context.Context, orderID kernel.UUID) ([]*stock.Reservation, error)

	DeleteByOrder(ctx context.Context, orderID kernel.UUID) error
}
