// Package postgres provides the GORM implementation of the unit of work and
// the schema migration for all repositories.
//
// Every command runs in one unit of work:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	item, err := uow.StockItemRepository().GetForUpdate(ctx, ids)
//	...
//	return uow.Commit(ctx)
//
// Begin bounds every row lock wait in the transaction with lock_timeout.
// Commit stores the events recorded by the orders written through
// OrderRepository in the outbox table before the transaction commits, so an
// event exists if and only if its state change does.
package postgres

import (
	"context"
	"fmt"
	"time"

	"manufacturing/internal/adapters/out/postgres/bomrepo"
	"manufacturing/internal/adapters/out/postgres/orderrepo"
	"manufacturing/internal/adapters/out/postgres/outboxrepo"
	"manufacturing/internal/adapters/out/postgres/reservationrepo"
	"manufacturing/internal/adapters/out/postgres/stockrepo"
	"manufacturing/internal/adapters/out/postgres/workcenterrepo"
	"manufacturing/internal/adapters/out/postgres/workorderrepo"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/ports"

	"gorm.io/gorm"
)

const (
	DefaultLockTimeout       = 3 * time.Second
	DefaultOrderEventsTopic  = "manufacturing.order.changed"
	lockTimeoutStatementTmpl = "SET LOCAL lock_timeout = '%dms'"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// Option configures a GormUnitOfWorkFactory.
type Option func(*GormUnitOfWorkFactory)

// WithLockTimeout sets how long a statement waits for a row lock. Zero
// disables the bound.
func WithLockTimeout(d time.Duration) Option {
	return func(f *GormUnitOfWorkFactory) {
		f.lockTimeout = d
	}
}

// WithOrderEventsTopic sets the topic order events are stored under.
func WithOrderEventsTopic(topic string) Option {
	return func(f *GormUnitOfWorkFactory) {
		f.orderEventsTopic = topic
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db               *gorm.DB
	lockTimeout      time.Duration
	orderEventsTopic string
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...Option) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{
		db:               db,
		lockTimeout:      DefaultLockTimeout,
		orderEventsTopic: DefaultOrderEventsTopic,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		lockTimeout:       f.lockTimeout,
		orderEventsTopic:  f.orderEventsTopic,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates
// written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	lockTimeout       time.Duration
	orderEventsTopic  string
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is
// open does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if uow.lockTimeout > 0 {
		stmt := fmt.Sprintf(lockTimeoutStatementTmpl, uow.lockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			_ = tx.Rollback().Error
			return err
		}
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit writes pending order events to the outbox and commits. If the
// outbox write fails the transaction stays open for Rollback.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.storeEvents(ctx); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) StockItemRepository() ports.StockItemRepository {
	return stockrepo.NewGormStockItemRepository(uow.conn())
}

func (uow *GormUnitOfWork) ReservationRepository() ports.ReservationRepository {
	return reservationrepo.NewGormReservationRepository(uow.conn())
}

func (uow *GormUnitOfWork) BomRepository() ports.BomRepository {
	return bomrepo.NewGormBomRepository(uow.conn())
}

func (uow *GormUnitOfWork) WorkCenterRepository() ports.WorkCenterRepository {
	return workcenterrepo.NewGormWorkCenterRepository(uow.conn())
}

func (uow *GormUnitOfWork) WorkOrderRepository() ports.WorkOrderRepository {
	return workorderrepo.NewGormWorkOrderRepository(uow.conn())
}

// OrderRepository returns a repository whose writes are tracked by this unit
// of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Tracking the same aggregate twice keeps one entry.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	for _, t := range uow.trackedAggregates {
		if t.ID.IsEqual(id) && t.Aggregate == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) storeEvents(ctx context.Context) error {
	var msgs []ports.OutboxMessage
	for _, t := range uow.trackedAggregates {
		o, ok := t.Aggregate.(*order.Order)
		if !ok {
			continue
		}
		for _, e := range o.PullEvents() {
			msg, err := outboxrepo.NewOrderEventMessage(uow.orderEventsTopic, e)
			if err != nil {
				return fmt.Errorf("encode %s event of order %s: %w", e.Type, e.OrderID, err)
			}
			msgs = append(msgs, msg)
		}
	}

	return outboxrepo.NewGormOutboxRepository(uow.tx).Append(ctx, msgs...)
}
