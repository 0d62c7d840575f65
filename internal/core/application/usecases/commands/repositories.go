// Package commands contains business operations that modify system state.
// Every command follows the same steps: validation, a unit of work with an
// explicit transaction, row locks on the aggregates it mutates, domain
// methods, persistence and commit.
package commands

import (
	"context"

	"manufacturing/internal/core/ports"
)

// Unit of Work role interfaces. Each handler depends on the narrowest one
// that covers the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	StockItemRepoFactory interface {
		StockItemRepository() ports.StockItemRepository
	}

	ReservationRepoFactory interface {
		ReservationRepository() ports.ReservationRepository
	}

	BomRepoFactory interface {
		BomRepository() ports.BomRepository
	}

	WorkCenterRepoFactory interface {
		WorkCenterRepository() ports.WorkCenterRepository
	}

	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StockUoW covers operations on stock items alone.
	StockUoW interface {
		TxManager
		StockItemRepoFactory
	}

	StockUoWFactory interface {
		Create() StockUoW
	}

	// BomUoW covers the BOM registry, which checks stock items on create and
	// active orders on delete.
	BomUoW interface {
		TxManager
		BomRepoFactory
		StockItemRepoFactory
		OrderRepoFactory
	}

	BomUoWFactory interface {
		Create() BomUoW
	}

	// WorkCenterUoW covers the work center registry.
	WorkCenterUoW interface {
		TxManager
		WorkCenterRepoFactory
	}

	WorkCenterUoWFactory interface {
		Create() WorkCenterUoW
	}

	// UoW spans every aggregate. Order and work order commands use it because
	// they move stock and re-derive the order status in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   items, err := uow.StockItemRepository().GetForUpdate(ctx, ids)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		StockItemRepoFactory
		ReservationRepoFactory
		BomRepoFactory
		WorkCenterRepoFactory
		WorkOrderRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
