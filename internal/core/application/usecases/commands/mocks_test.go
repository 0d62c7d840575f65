package commands_test

import (
	"context"
	"time"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/stock"
	"manufacturing/internal/core/domain/model/workcenter"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func value[T any](args mock.Arguments, i int) T {
	if v, ok := args.Get(i).(T); ok {
		return v
	}
	var zero T
	return zero
}

type MockStockItemRepository struct{ mock.Mock }

func (m *MockStockItemRepository) Add(ctx context.Context, item *stock.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockStockItemRepository) Update(ctx context.Context, item *stock.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockStockItemRepository) Get(ctx context.Context, id kernel.UUID) (*stock.Item, error) {
	args := m.Called(ctx, id)
	return value[*stock.Item](args, 0), args.Error(1)
}

func (m *MockStockItemRepository) GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*stock.Item, error) {
	args := m.Called(ctx, ids)
	return value[[]*stock.Item](args, 0), args.Error(1)
}

func (m *MockStockItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockReservationRepository struct{ mock.Mock }

func (m *MockReservationRepository) Save(ctx context.Context, reservations ...*stock.Reservation) error {
	return m.Called(ctx, reservations).Error(0)
}

func (m *MockReservationRepository) GetByOrderForUpdate(ctx context.Context, orderID kernel.UUID) ([]*stock.Reservation, error) {
	args := m.Called(ctx, orderID)
	return value[[]*stock.Reservation](args, 0), args.Error(1)
}

func (m *MockReservationRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

type MockBomRepository struct{ mock.Mock }

func (m *MockBomRepository) Add(ctx context.Context, b *bom.BillOfMaterial) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBomRepository) Get(ctx context.Context, id kernel.UUID) (*bom.BillOfMaterial, error) {
	args := m.Called(ctx, id)
	return value[*bom.BillOfMaterial](args, 0), args.Error(1)
}

func (m *MockBomRepository) GetForShare(ctx context.Context, id kernel.UUID) (*bom.BillOfMaterial, error) {
	args := m.Called(ctx, id)
	return value[*bom.BillOfMaterial](args, 0), args.Error(1)
}

func (m *MockBomRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*bom.BillOfMaterial, error) {
	args := m.Called(ctx, id)
	return value[*bom.BillOfMaterial](args, 0), args.Error(1)
}

func (m *MockBomRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockWorkCenterRepository struct{ mock.Mock }

func (m *MockWorkCenterRepository) Add(ctx context.Context, wc *workcenter.WorkCenter) error {
	return m.Called(ctx, wc).Error(0)
}

func (m *MockWorkCenterRepository) Update(ctx context.Context, wc *workcenter.WorkCenter) error {
	return m.Called(ctx, wc).Error(0)
}

func (m *MockWorkCenterRepository) Get(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error) {
	args := m.Called(ctx, id)
	return value[*workcenter.WorkCenter](args, 0), args.Error(1)
}

func (m *MockWorkCenterRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error) {
	args := m.Called(ctx, id)
	return value[*workcenter.WorkCenter](args, 0), args.Error(1)
}

func (m *MockWorkCenterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	return m.Called(ctx, wo).Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	return m.Called(ctx, wo).Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	return value[*workorder.WorkOrder](args, 0), args.Error(1)
}

func (m *MockWorkOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	return value[*workorder.WorkOrder](args, 0), args.Error(1)
}

func (m *MockWorkOrderRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, orderID)
	return value[[]*workorder.WorkOrder](args, 0), args.Error(1)
}

func (m *MockWorkOrderRepository) CountActiveByWorkCenter(ctx context.Context, workCenterID kernel.UUID) (int64, error) {
	args := m.Called(ctx, workCenterID)
	return value[int64](args, 0), args.Error(1)
}

func (m *MockWorkOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockWorkOrderRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return value[*order.Order](args, 0), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return value[*order.Order](args, 0), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) CountActiveByBom(ctx context.Context, bomID kernel.UUID) (int64, error) {
	args := m.Called(ctx, bomID)
	return value[int64](args, 0), args.Error(1)
}

// MockUoW satisfies every unit of work role interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) StockItemRepository() ports.StockItemRepository {
	return m.Called().Get(0).(ports.StockItemRepository)
}

func (m *MockUoW) ReservationRepository() ports.ReservationRepository {
	return m.Called().Get(0).(ports.ReservationRepository)
}

func (m *MockUoW) BomRepository() ports.BomRepository {
	return m.Called().Get(0).(ports.BomRepository)
}

func (m *MockUoW) WorkCenterRepository() ports.WorkCenterRepository {
	return m.Called().Get(0).(ports.WorkCenterRepository)
}

func (m *MockUoW) WorkOrderRepository() ports.WorkOrderRepository {
	return m.Called().Get(0).(ports.WorkOrderRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ uow *MockUoW }

func (f MockUoWFactory) Create() commands.UoW { return f.uow }

type MockStockUoWFactory struct{ uow *MockUoW }

func (f MockStockUoWFactory) Create() commands.StockUoW { return f.uow }

type MockBomUoWFactory struct{ uow *MockUoW }

func (f MockBomUoWFactory) Create() commands.BomUoW { return f.uow }

type MockWorkCenterUoWFactory struct{ uow *MockUoW }

func (f MockWorkCenterUoWFactory) Create() commands.WorkCenterUoW { return f.uow }

// repos wires a MockUoW to one mock of every repository. Accessors may be
// called any number of times.
type repos struct {
	uow          *MockUoW
	items        *MockStockItemRepository
	reservations *MockReservationRepository
	boms         *MockBomRepository
	centers      *MockWorkCenterRepository
	workOrders   *MockWorkOrderRepository
	orders       *MockOrderRepository
}

func newRepos() *repos {
	r := &repos{
		uow:          new(MockUoW),
		items:        new(MockStockItemRepository),
		reservations: new(MockReservationRepository),
		boms:         new(MockBomRepository),
		centers:      new(MockWorkCenterRepository),
		workOrders:   new(MockWorkOrderRepository),
		orders:       new(MockOrderRepository),
	}
	r.uow.On("StockItemRepository").Return(r.items).Maybe()
	r.uow.On("ReservationRepository").Return(r.reservations).Maybe()
	r.uow.On("BomRepository").Return(r.boms).Maybe()
	r.uow.On("WorkCenterRepository").Return(r.centers).Maybe()
	r.uow.On("WorkOrderRepository").Return(r.workOrders).Maybe()
	r.uow.On("OrderRepository").Return(r.orders).Maybe()
	return r
}

// expectTx expects Begin, an optional Commit and the deferred Rollback.
func (r *repos) expectTx(commit bool) {
	r.uow.On("Begin", mock.Anything).Return(nil).Once()
	if commit {
		r.uow.On("Commit", mock.Anything).Return(nil).Once()
	}
	r.uow.On("Rollback", mock.Anything).Return(nil).Once()
}

type assertable interface {
	AssertExpectations(t mock.TestingT) bool
}

func (r *repos) assertAll(t mock.TestingT) {
	for _, m := range []assertable{r.uow, r.items, r.reservations, r.boms, r.centers, r.workOrders, r.orders} {
		m.AssertExpectations(t)
	}
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) ListPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	return value[[]ports.OutboxMessage](args, 0), args.Error(1)
}

func (m *MockOutboxRepository) MarkSent(ctx context.Context, id kernel.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockOutboxRepository) IncrementRetries(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	return m.Called(ctx, msg).Error(0)
}
