package commands

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/clock"
)

type UpdateOrderDetailsCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
}

func NewUpdateOrderDetailsCommandHandler(uowFactory UoWFactory, clk clock.Clock) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle applies the new details and re-derives the status, so moving the
// delivery date into the past makes an open order Delayed.
func (h UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) error {
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

	now := h.clock.Now()
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	progress, _, err := progressOf(ctx, uow.WorkOrderRepository(), o.ID())
	if err != nil {
		return err
	}

	if err = o.UpdateDetails(cmd.Customer(), cmd.DeliveryOn(), progress, kernel.DateOf(now), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
