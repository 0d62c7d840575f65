package bomrepo_test

import (
	"context"
	"testing"
	"time"

	"manufacturing/internal/adapters/out/postgres/bomrepo"
	"manufacturing/internal/adapters/out/postgres/pgtest"
	"manufacturing/internal/adapters/out/postgres/stockrepo"
	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/stock"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type BomRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *bomrepo.GormBomRepository
	screw      *stock.Item
	plate      *stock.Item
}

func (suite *BomRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *BomRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset())
	suite.repository = bomrepo.NewGormBomRepository(suite.pg.DB)

	items := stockrepo.NewGormStockItemRepository(suite.pg.DB)
	suite.screw = suite.item("ScrewA", 10)
	suite.plate = suite.item("PlateB", 3)
	suite.Require().NoError(items.Add(suite.T().Context(), suite.screw))
	suite.Require().NoError(items.Add(suite.T().Context(), suite.plate))
}

func (suite *BomRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *BomRepositoryIntegrationTestSuite) TestAddAndGetKeepsComponentOrder() {
	ctx := suite.T().Context()
	b := suite.widget()

	suite.Require().NoError(suite.repository.Add(ctx, b))
	got, err := suite.repository.GetForShare(ctx, b.ID())

	suite.Require().NoError(err)
	suite.Equal(1, got.Version())
	suite.Nil(got.PreviousID())
	suite.Require().Len(got.Components(), 2)
	suite.True(got.Components()[0].ItemID().IsEqual(suite.plate.ID()))
	suite.Equal(1, got.Components()[0].PerUnit())
	suite.True(got.Components()[1].ItemID().IsEqual(suite.screw.ID()))
	suite.Equal(2, got.Components()[1].PerUnit())
}

func (suite *BomRepositoryIntegrationTestSuite) TestAdd_UnknownStockItem() {
	c, err := bom.NewComponent(kernel.NewUUID(), 1)
	suite.Require().NoError(err)
	b, err := bom.NewBillOfMaterial(kernel.NewUUID(), "Ghost", []bom.Component{c})
	suite.Require().NoError(err)

	err = suite.repository.Add(suite.T().Context(), b)

	suite.Require().ErrorIs(err, bom.ErrInvalidComponent)
}

func (suite *BomRepositoryIntegrationTestSuite) TestRevisionLinksPreviousVersion() {
	ctx := suite.T().Context()
	v1 := suite.widget()
	suite.Require().NoError(suite.repository.Add(ctx, v1))

	c, err := bom.NewComponent(suite.screw.ID(), 3)
	suite.Require().NoError(err)
	v2, err := v1.Revise(kernel.NewUUID(), []bom.Component{c})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, v2))

	got, err := suite.repository.Get(ctx, v2.ID())
	suite.Require().NoError(err)
	suite.Equal(2, got.Version())
	suite.Require().NotNil(got.PreviousID())
	suite.True(got.PreviousID().IsEqual(v1.ID()))
}

func (suite *BomRepositoryIntegrationTestSuite) TestSoftDelete() {
	ctx := suite.T().Context()
	b := suite.widget()
	suite.Require().NoError(suite.repository.Add(ctx, b))

	suite.Require().NoError(suite.repository.Delete(ctx, b.ID()))

	_, err := suite.repository.GetForUpdate(ctx, b.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	got, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err, "deleted versions stay readable")
	suite.Len(got.Components(), 2)

	suite.Require().ErrorIs(suite.repository.Delete(ctx, b.ID()), errs.ErrObjectNotFound)
}

func (suite *BomRepositoryIntegrationTestSuite) widget() *bom.BillOfMaterial {
	plate, err := bom.NewComponent(suite.plate.ID(), 1)
	suite.Require().NoError(err)
	screw, err := bom.NewComponent(suite.screw.ID(), 2)
	suite.Require().NoError(err)
	b, err := bom.NewBillOfMaterial(kernel.NewUUID(), "Widget", []bom.Component{plate, screw})
	suite.Require().NoError(err)
	return b
}

func (suite *BomRepositoryIntegrationTestSuite) item(name string, onHand int) *stock.Item {
	item, err := stock.NewItem(kernel.NewUUID(), name, stock.Component, onHand, time.Now())
	suite.Require().NoError(err)
	return item
}

func TestBomRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(BomRepositoryIntegrationTestSuite))
}
