package workorderrepo_test

import (
	"context"
	"testing"
	"time"

	"manufacturing/internal/adapters/out/postgres/pgtest"
	"manufacturing/internal/adapters/out/postgres/workcenterrepo"
	"manufacturing/internal/adapters/out/postgres/workorderrepo"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workcenter"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WorkOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg          *pgtest.Database
	workOrders  *workorderrepo.GormWorkOrderRepository
	workCenters *workcenterrepo.GormWorkCenterRepository
	fixture     *pgtest.Fixture
	press       *workcenter.WorkCenter
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) SetupTest() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.pg.Reset())

	fixture, err := suite.pg.SeedOrder(ctx, 10, 5)
	suite.Require().NoError(err)
	suite.fixture = fixture

	suite.workOrders = workorderrepo.NewGormWorkOrderRepository(suite.pg.DB)
	suite.workCenters = workcenterrepo.NewGormWorkCenterRepository(suite.pg.DB)

	press, err := workcenter.NewWorkCenter(kernel.NewUUID(), "Press-1", decimal.RequireFromString("42.50"), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.workCenters.Add(ctx, press))
	suite.press = press
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestWorkCenterRoundTrip() {
	ctx := suite.T().Context()
	wc, err := suite.workCenters.GetForUpdate(ctx, suite.press.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(wc.RecordDowntime(decimal.RequireFromString("1.5")))
	suite.Require().NoError(suite.workCenters.Update(ctx, wc))

	got, err := suite.workCenters.Get(ctx, suite.press.ID())
	suite.Require().NoError(err)
	suite.Equal("Press-1", got.Name())
	suite.Equal(2, got.Capacity())
	suite.True(decimal.RequireFromString("42.5").Equal(got.CostPerHour()))
	suite.True(decimal.RequireFromString("1.5").Equal(got.Downtime()))
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestLifecyclePersists() {
	ctx := suite.T().Context()
	wo := suite.addWorkOrder(2)

	locked, err := suite.workOrders.GetForUpdate(ctx, wo.ID())
	suite.Require().NoError(err)
	_, err = locked.TransitionTo(workorder.InProgress, time.Now())
	suite.Require().NoError(err)
	_, err = locked.TransitionTo(workorder.Done, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.workOrders.Update(ctx, locked))

	list, err := suite.workOrders.ListByOrder(ctx, suite.fixture.Order.ID())
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(workorder.Done, list[0].Status())
	suite.NotNil(list[0].StartedAt())
	suite.NotNil(list[0].FinishedAt())
	suite.Equal(2, list[0].Quantity())

	got, err := suite.workOrders.Get(ctx, wo.ID())
	suite.Require().NoError(err)
	suite.Equal(suite.fixture.Order.ID(), got.OrderID())

	_, err = suite.workOrders.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestCountActiveByWorkCenter() {
	ctx := suite.T().Context()
	planned := suite.addWorkOrder(1)
	blocked := suite.addWorkOrder(1)

	wo, err := suite.workOrders.GetForUpdate(ctx, blocked.ID())
	suite.Require().NoError(err)
	_, err = wo.TransitionTo(workorder.InProgress, time.Now())
	suite.Require().NoError(err)
	_, err = wo.TransitionTo(workorder.Blocked, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.workOrders.Update(ctx, wo))

	n, err := suite.workOrders.CountActiveByWorkCenter(ctx, suite.press.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), n, "blocked work orders do not count")

	suite.Require().NoError(suite.workOrders.Delete(ctx, planned.ID()))
	n, err = suite.workOrders.CountActiveByWorkCenter(ctx, suite.press.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(0), n)
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestWorkCenterInUseCannotBeDeleted() {
	ctx := suite.T().Context()
	suite.addWorkOrder(1)

	err := suite.workCenters.Delete(ctx, suite.press.ID())
	suite.Require().ErrorIs(err, workcenter.ErrWorkCenterInUse)
	suite.Require().ErrorIs(err, errs.ErrIntegrity)

	suite.Require().NoError(suite.workOrders.DeleteByOrder(ctx, suite.fixture.Order.ID()))
	suite.Require().NoError(suite.workCenters.Delete(ctx, suite.press.ID()))
	suite.Require().ErrorIs(suite.workCenters.Delete(ctx, suite.press.ID()), errs.ErrObjectNotFound)
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) addWorkOrder(qty int) *workorder.WorkOrder {
	wo, err := workorder.NewWorkOrder(kernel.NewUUID(), suite.fixture.Order.ID(), suite.press.ID(), kernel.NewUUID(), qty, "first shift")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.workOrders.Add(suite.T().Context(), wo))
	return wo
}

func TestWorkOrderRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(WorkOrderRepositoryIntegrationTestSuite))
}
