package commands_test

import (
	"testing"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteStockItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteStockItemCommand(id)
	require.NoError(t, err)

	r := newRepos()
	r.expectTx(true)
	r.items.On("Delete", mock.Anything, id).Return(nil).Once()

	h := commands.NewDeleteStockItemCommandHandler(MockStockUoWFactory{r.uow})
	require.NoError(t, h.Handle(ctx, cmd))
	r.assertAll(t)
}

func TestDeleteStockItemCommandHandler_Handle_StillReferenced(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteStockItemCommand(id)

	r := newRepos()
	r.expectTx(false)
	r.items.On("Delete", mock.Anything, id).
		Return(errs.NewIntegrityError("stock item", "is referenced")).Once()

	h := commands.NewDeleteStockItemCommandHandler(MockStockUoWFactory{r.uow})
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrIntegrity)
	r.assertAll(t)
}

func TestNewDeleteStockItemCommand_InvalidID(t *testing.T) {
	_, err := commands.NewDeleteStockItemCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
