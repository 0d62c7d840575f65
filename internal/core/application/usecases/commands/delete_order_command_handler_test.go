package commands_test

import (
	"testing"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/stock"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deleteOrderHandler(r *repos) commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(MockUoWFactory{r.uow}, services.NewStockLedger(), clk)
}

func TestDeleteOrderCommandHandler_Handle_RemovesEverything(t *testing.T) {
	ctx := t.Context()
	f := newTransitionFixture(t, 2, workorder.Planned)
	cmd, err := commands.NewDeleteOrderCommand(f.order.ID())
	require.NoError(t, err)

	r := newRepos()
	r.expectTx(true)
	r.orders.On("GetForUpdate", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
	r.workOrders.On("ListByOrder", mock.Anything, f.order.ID()).Return([]*workorder.WorkOrder{f.workOrder}, nil).Once()
	r.reservations.On("GetByOrderForUpdate", mock.Anything, f.order.ID()).
		Return([]*stock.Reservation{f.reservation}, nil).Once()
	r.items.On("GetForUpdate", mock.Anything, []kernel.UUID{f.screw.ID()}).Return([]*stock.Item{f.screw}, nil).Once()
	r.items.On("Update", mock.Anything, f.screw).Return(nil).Once()
	r.reservations.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	mock.InOrder(
		r.reservations.On("DeleteByOrder", mock.Anything, f.order.ID()).Return(nil).Once(),
		r.workOrders.On("DeleteByOrder", mock.Anything, f.order.ID()).Return(nil).Once(),
		r.orders.On("Delete", mock.Anything, f.order).Return(nil).Once(),
	)

	require.NoError(t, deleteOrderHandler(r).Handle(ctx, cmd))

	assert.Equal(t, 0, f.screw.Reserved())
	events := f.order.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, order.EventDeleted, events[0].Type)
	r.assertAll(t)
}

func TestDeleteOrderCommandHandler_Handle_StartedWorkIsNotDeletable(t *testing.T) {
	ctx := t.Context()
	f := newTransitionFixture(t, 2, workorder.Blocked)
	cmd, _ := commands.NewDeleteOrderCommand(f.order.ID())

	r := newRepos()
	r.expectTx(false)
	r.orders.On("GetForUpdate", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
	r.workOrders.On("ListByOrder", mock.Anything, f.order.ID()).Return([]*workorder.WorkOrder{f.workOrder}, nil).Once()

	err := deleteOrderHandler(r).Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderNotDeletable)
	assert.Equal(t, errs.KindIntegrity, errs.KindOf(err))
	r.orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	r.assertAll(t)
}
