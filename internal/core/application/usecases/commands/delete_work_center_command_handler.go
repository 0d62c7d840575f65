package commands

import (
	"context"
)

// DeleteWorkCenterCommandHandler removes a work center. The repository fails
// with workcenter.ErrWorkCenterInUse while work orders reference it.
type DeleteWorkCenterCommandHandler struct {
	uowFactory WorkCenterUoWFactory
}

func NewDeleteWorkCenterCommandHandler(uowFactory WorkCenterUoWFactory) DeleteWorkCenterCommandHandler {
	return DeleteWorkCenterCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteWorkCenterCommandHandler) Handle(ctx context.Context, cmd DeleteWorkCenterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.WorkCenterRepository().Delete(ctx, cmd.CenterID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
