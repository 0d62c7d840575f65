// Package pgtest starts a throwaway PostgreSQL for integration tests.
package pgtest

import (
	"context"
	"errors"
	"time"

	postgresadapter "manufacturing/internal/adapters/out/postgres"
	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/stock"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated PostgreSQL running in a container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects with the same GORM settings as the
// service and migrates the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := postgresadapter.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Reset empties every table.
func (d *Database) Reset() error {
	return postgresadapter.TruncateAll(d.DB)
}

func (d *Database) Stop(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// Fixture is a committed order with its stock item and bill of material.
type Fixture struct {
	Item  *stock.Item
	Bom   *bom.BillOfMaterial
	Order *order.Order
}

// SeedOrder commits a stock item with onHand units, a bill of material using
// one unit of it, and a Draft order for qty products against it.
func (d *Database) SeedOrder(ctx context.Context, onHand, qty int) (*Fixture, error) {
	now := time.Now().UTC()

	item, err := stock.NewItem(kernel.NewUUID(), "steel", stock.Raw, onHand, now)
	if err != nil {
		return nil, err
	}
	c, err := bom.NewComponent(item.ID(), 1)
	if err != nil {
		return nil, err
	}
	b, err := bom.NewBillOfMaterial(kernel.NewUUID(), "Widget", []bom.Component{c})
	if err != nil {
		return nil, err
	}
	today := kernel.DateOf(now)
	o, err := order.NewOrder(kernel.NewUUID(), "ACME", "Widget", b.ID(), qty, today, today.AddDays(14), now)
	if err != nil {
		return nil, err
	}

	uow := postgresadapter.NewGormUnitOfWorkFactory(d.DB).Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := errors.Join(
		uow.StockItemRepository().Add(ctx, item),
		uow.BomRepository().Add(ctx, b),
		uow.OrderRepository().Add(ctx, o),
	); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &Fixture{Item: item, Bom: b, Order: o}, nil
}
