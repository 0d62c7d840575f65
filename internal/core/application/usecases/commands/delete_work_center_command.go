package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrDeleteWorkCenterCommandIsNotConstructed = errors.New(
	"DeleteWorkCenterCommand must be created via NewDeleteWorkCenterCommand constructor",
)

type DeleteWorkCenterCommand struct { //nolint:recvcheck //using for validation
	centerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteWorkCenterCommand(centerID kernel.UUID) (DeleteWorkCenterCommand, error) {
	if err := centerID.Validate(); err != nil {
		return DeleteWorkCenterCommand{}, err
	}

	return DeleteWorkCenterCommand{
		centerID: centerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteWorkCenterCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkCenterCommandIsNotConstructed)
}

func (c DeleteWorkCenterCommand) CenterID() kernel.UUID {
	return c.centerID
}
