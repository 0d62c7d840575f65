package commands

import (
	"context"
	"fmt"

	"manufacturing/internal/core/domain/model/bom"
)

// DeleteBomCommandHandler soft-deletes a bill of material that no open order
// uses. The exclusive lock waits for placements holding a shared lock on it.
type DeleteBomCommandHandler struct {
	uowFactory BomUoWFactory
}

func NewDeleteBomCommandHandler(uowFactory BomUoWFactory) DeleteBomCommandHandler {
	return DeleteBomCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns an error wrapping bom.ErrBomInUse while an order that is
// neither Done nor Cancelled references the bill of material.
func (h DeleteBomCommandHandler) Handle(ctx context.Context, cmd DeleteBomCommand) error {
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

	bomRepo := uow.BomRepository()
	b, err := bomRepo.GetForUpdate(ctx, cmd.BomID())
	if err != nil {
		return err
	}

	active, err := uow.OrderRepository().CountActiveByBom(ctx, b.ID())
	if err != nil {
		return err
	}
	if active > 0 {
		return fmt.Errorf("%w: %d open orders", bom.ErrBomInUse, active)
	}

	if err = bomRepo.Delete(ctx, b.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
