package commands_test

import (
	"testing"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelWorkOrderCommandHandler_Handle_RemovesPlanned(t *testing.T) {
	ctx := t.Context()
	f := newTransitionFixture(t, 4, workorder.Planned)
	cmd, err := commands.NewCancelWorkOrderCommand(f.workOrder.ID())
	require.NoError(t, err)

	r := newRepos()
	r.expectTx(true)
	f.expectLoad(r)
	r.workOrders.On("Delete", mock.Anything, f.workOrder.ID()).Return(nil).Once()
	r.workOrders.On("ListByOrder", mock.Anything, f.order.ID()).Return([]*workorder.WorkOrder{}, nil).Once()

	h := commands.NewCancelWorkOrderCommandHandler(MockUoWFactory{r.uow}, services.NewStockLedger(), clk)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Draft, f.order.Status())
	r.reservations.AssertNotCalled(t, "GetByOrderForUpdate", mock.Anything, mock.Anything)
	r.assertAll(t)
}

func TestCancelWorkOrderCommandHandler_Handle_StartedIsRejected(t *testing.T) {
	ctx := t.Context()
	f := newTransitionFixture(t, 4, workorder.InProgress)
	cmd, _ := commands.NewCancelWorkOrderCommand(f.workOrder.ID())

	r := newRepos()
	r.expectTx(false)
	f.expectLoad(r)

	h := commands.NewCancelWorkOrderCommandHandler(MockUoWFactory{r.uow}, services.NewStockLedger(), clk)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, workorder.ErrInvalidTransition)
	r.workOrders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	r.assertAll(t)
}
