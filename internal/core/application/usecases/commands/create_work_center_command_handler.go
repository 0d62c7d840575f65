package commands

import (
	"context"

	"manufacturing/internal/core/domain/model/workcenter"
)

type CreateWorkCenterCommandHandler struct {
	uowFactory WorkCenterUoWFactory
}

func NewCreateWorkCenterCommandHandler(uowFactory WorkCenterUoWFactory) CreateWorkCenterCommandHandler {
	return CreateWorkCenterCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateWorkCenterCommandHandler) Handle(ctx context.Context, cmd CreateWorkCenterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	wc, err := workcenter.NewWorkCenter(cmd.CenterID(), cmd.Name(), cmd.CostPerHour(), cmd.Capacity())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkCenterRepository().Add(ctx, wc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
