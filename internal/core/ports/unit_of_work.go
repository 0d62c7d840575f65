package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit writes the events recorded by tracked orders to the outbox and
	// commits the transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	StockItemRepository() StockItemRepository
	ReservationRepository() ReservationRepository
	BomRepository() BomRepository
	WorkCenterRepository() WorkCenterRepository
	WorkOrderRepository() WorkOrderRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction. Orders it writes are tracked for event collection.
	OrderRepository() OrderRepository
}
