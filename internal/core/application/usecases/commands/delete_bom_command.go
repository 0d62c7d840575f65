package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrDeleteBomCommandIsNotConstructed = errors.New(
	"DeleteBomCommand must be created via NewDeleteBomCommand constructor",
)

type DeleteBomCommand struct { //nolint:recvcheck //using for validation
	bomID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteBomCommand(bomID kernel.UUID) (DeleteBomCommand, error) {
	if err := bomID.Validate(); err != nil {
		return DeleteBomCommand{}, err
	}

	return DeleteBomCommand{
		bomID: bomID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteBomCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBomCommandIsNotConstructed)
}

func (c DeleteBomCommand) BomID() kernel.UUID {
	return c.bomID
}
