package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	postgresadapter "manufacturing/internal/adapters/out/postgres"
	"manufacturing/internal/adapters/out/postgres/outboxrepo"
	"manufacturing/internal/adapters/out/postgres/pgtest"
	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/stock"
	"manufacturing/internal/core/ports"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var now = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(pg.DB,
		postgresadapter.WithLockTimeout(200*time.Millisecond),
		postgresadapter.WithOrderEventsTopic("orders"),
	)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitAndRollbackRequireTransaction() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsChanges() {
	ctx := suite.T().Context()
	item := suite.newItem("steel", 5)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StockItemRepository().Add(ctx, item))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().StockItemRepository().Get(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitStoresOrderEventsInOutbox() {
	ctx := suite.T().Context()
	item := suite.newItem("steel", 5)
	b := suite.newBom(item)
	suite.seed(item, b)

	o, err := order.NewOrder(kernel.NewUUID(), "ACME", "Widget", b.ID(), 1,
		kernel.DateOf(now), kernel.DateOf(now).AddDays(7), now)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	o.RefreshStatus(order.Progress{Total: 1, Started: 1}, kernel.DateOf(now), now)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	pending, err := outboxrepo.NewGormOutboxRepository(suite.pg.DB).ListPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal("orders", pending[0].Topic)
	suite.Equal(o.ID().String(), pending[0].Key)

	var payload outboxrepo.OrderEventPayload
	suite.Require().NoError(json.Unmarshal(pending[0].Payload, &payload))
	suite.Equal(string(order.EventPlaced), payload.Type)
	suite.Require().NoError(json.Unmarshal(pending[1].Payload, &payload))
	suite.Equal(string(order.EventStatusChanged), payload.Type)
	suite.Equal(order.InProgress.String(), payload.Status)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRolledBackOrderLeavesNoEvents() {
	ctx := suite.T().Context()
	item := suite.newItem("steel", 5)
	b := suite.newBom(item)
	suite.seed(item, b)

	o, err := order.NewOrder(kernel.NewUUID(), "ACME", "Widget", b.ID(), 1,
		kernel.DateOf(now), kernel.DateOf(now), now)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	pending, err := outboxrepo.NewGormOutboxRepository(suite.pg.DB).ListPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLockTimeoutSurfacesAsConflict() {
	ctx := suite.T().Context()
	item := suite.newItem("steel", 5)
	suite.seed(item)

	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	defer func() { _ = holder.Rollback(ctx) }()
	_, err := holder.StockItemRepository().GetForUpdate(ctx, []kernel.UUID{item.ID()})
	suite.Require().NoError(err)

	waiter := suite.factory.Create()
	suite.Require().NoError(waiter.Begin(ctx))
	defer func() { _ = waiter.Rollback(ctx) }()
	_, err = waiter.StockItemRepository().GetForUpdate(ctx, []kernel.UUID{item.ID()})

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *UnitOfWorkIntegrationTestSuite) newItem(name string, onHand int) *stock.Item {
	item, err := stock.NewItem(kernel.NewUUID(), name, stock.Raw, onHand, now)
	suite.Require().NoError(err)
	return item
}

func (suite *UnitOfWorkIntegrationTestSuite) newBom(items ...*stock.Item) *bom.BillOfMaterial {
	components := make([]bom.Component, 0, len(items))
	for _, item := range items {
		c, err := bom.NewComponent(item.ID(), 1)
		suite.Require().NoError(err)
		components = append(components, c)
	}
	b, err := bom.NewBillOfMaterial(kernel.NewUUID(), "Widget", components)
	suite.Require().NoError(err)
	return b
}

func (suite *UnitOfWorkIntegrationTestSuite) seed(item *stock.Item, boms ...*bom.BillOfMaterial) {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StockItemRepository().Add(ctx, item))
	for _, b := range boms {
		suite.Require().NoError(uow.BomRepository().Add(ctx, b))
	}
	suite.Require().NoError(uow.Commit(ctx))
}

func TestUnitOfWorkIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
