package commands

import (
	"context"
)

type RecordDowntimeCommandHandler struct {
	uowFactory WorkCenterUoWFactory
}

func NewRecordDowntimeCommandHandler(uowFactory WorkCenterUoWFactory) RecordDowntimeCommandHandler {
	return RecordDowntimeCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RecordDowntimeCommandHandler) Handle(ctx context.Context, cmd RecordDowntimeCommand) error {
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

	repo := uow.WorkCenterRepository()
	wc, err := repo.GetForUpdate(ctx, cmd.CenterID())
	if err != nil {
		return err
	}

	if err = wc.RecordDowntime(cmd.Hours()); err != nil {
		return err
	}

	if err = repo.Update(ctx, wc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
