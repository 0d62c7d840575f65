// Package ports defines the contracts between the manufacturing domain and
// infrastructure: repositories, the unit of work and event publication.
package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for manufacturing order aggregates.
type OrderRepository interface {
	// Add persists a new order. The order's recorded events are picked up at commit.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier without locking it.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and holds a row lock on it until the
	// transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order row. Work orders and reservations must be
	// removed first.
	Delete(ctx context.Context, aggregate *order.Order) error

	// CountActiveByBom counts orders built from bomID that are neither Done
	// nor Cancelled.
	CountActiveByBom(ctx context.Context, bomID kernel.UUID) (int64, error)
}
