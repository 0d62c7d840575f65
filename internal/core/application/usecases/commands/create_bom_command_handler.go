package commands

import (
	"context"
	"errors"
	"fmt"

	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/ports"
	"manufacturing/internal/pkg/errs"
)

// CreateBomCommandHandler stores a new bill of material after checking that
// every component names an existing stock item.
type CreateBomCommandHandler struct {
	uowFactory BomUoWFactory
}

func NewCreateBomCommandHandler(uowFactory BomUoWFactory) CreateBomCommandHandler {
	return CreateBomCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns an error wrapping bom.ErrInvalidComponent when a stock item
// does not exist.
func (h CreateBomCommandHandler) Handle(ctx context.Context, cmd CreateBomCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	b, err := bom.NewBillOfMaterial(cmd.BomID(), cmd.Name(), cmd.Components())
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

	if err = ensureComponentsExist(ctx, uow.StockItemRepository(), b); err != nil {
		return err
	}

	if err = uow.BomRepository().Add(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ensureComponentsExist(ctx context.Context, repo ports.StockItemRepository, b *bom.BillOfMaterial) error {
	for _, id := range b.ItemIDs() {
		_, err := repo.Get(ctx, id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: stock item %s does not exist", bom.ErrInvalidComponent, id)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
