package commands

import (
	"context"
)

// ReviseBomCommandHandler holds a shared lock on the current version so it
// cannot be deleted while its successor is written.
type ReviseBomCommandHandler struct {
	uowFactory BomUoWFactory
}

func NewReviseBomCommandHandler(uowFactory BomUoWFactory) ReviseBomCommandHandler {
	return ReviseBomCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReviseBomCommandHandler) Handle(ctx context.Context, cmd ReviseBomCommand) error {
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
	current, err := bomRepo.GetForShare(ctx, cmd.BomID())
	if err != nil {
		return err
	}

	revision, err := current.Revise(cmd.RevisionID(), cmd.Components())
	if err != nil {
		return err
	}

	if err = ensureComponentsExist(ctx, uow.StockItemRepository(), revision); err != nil {
		return err
	}

	if err = bomRepo.Add(ctx, revision); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
