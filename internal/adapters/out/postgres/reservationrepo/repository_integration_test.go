package reservationrepo_test

import (
	"context"
	"testing"

	"manufacturing/internal/adapters/out/postgres/pgtest"
	"manufacturing/internal/adapters/out/postgres/reservationrepo"
	"manufacturing/internal/adapters/out/postgres/stockrepo"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/stock"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ReservationRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *reservationrepo.GormReservationRepository
	fixture    *pgtest.Fixture
}

func (suite *ReservationRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ReservationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset())
	fixture, err := suite.pg.SeedOrder(suite.T().Context(), 10, 4)
	suite.Require().NoError(err)
	suite.fixture = fixture
	suite.repository = reservationrepo.NewGormReservationRepository(suite.pg.DB)
}

func (suite *ReservationRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestSaveUpserts() {
	ctx := suite.T().Context()
	res := suite.newReservation(4)
	suite.Require().NoError(suite.repository.Save(ctx, res))

	suite.Require().NoError(res.Consume(3))
	suite.Require().NoError(suite.repository.Save(ctx, res))

	got, err := suite.repository.GetByOrderForUpdate(ctx, suite.fixture.Order.ID())
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal(1, got[0].Outstanding())
	suite.Equal(3, got[0].Consumed())
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestOneReservationPerOrderAndItem() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repository.Save(ctx, suite.newReservation(1)))

	err := suite.repository.Save(ctx, suite.newReservation(1))

	suite.Require().ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestReservedItemCannotBeDeleted() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repository.Save(ctx, suite.newReservation(2)))

	suite.Require().NoError(suite.pg.DB.Exec("DELETE FROM bom_components").Error)
	items := stockrepo.NewGormStockItemRepository(suite.pg.DB)

	err := items.Delete(ctx, suite.fixture.Item.ID())
	suite.Require().ErrorIs(err, errs.ErrIntegrity)

	suite.Require().NoError(suite.repository.DeleteByOrder(ctx, suite.fixture.Order.ID()))
	got, err := suite.repository.GetByOrderForUpdate(ctx, suite.fixture.Order.ID())
	suite.Require().NoError(err)
	suite.Empty(got)
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestGetByOrder_InvalidID() {
	_, err := suite.repository.GetByOrderForUpdate(suite.T().Context(), kernel.UUID{})
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *ReservationRepositoryIntegrationTestSuite) newReservation(qty int) *stock.Reservation {
	res, err := stock.NewReservation(kernel.NewUUID(), suite.fixture.Order.ID(), suite.fixture.Item.ID(), qty)
	suite.Require().NoError(err)
	return res
}

func TestReservationRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(ReservationRepositoryIntegrationTestSuite))
}
