package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrReviseBomCommandIsNotConstructed = errors.New(
	"ReviseBomCommand must be created via NewReviseBomCommand constructor",
)

// ReviseBomCommand creates the next version of a bill of material under
// revisionID. Orders already placed keep the version they reference.
type ReviseBomCommand struct { //nolint:recvcheck //using for validation
	bomID      kernel.UUID
	revisionID kernel.UUID
	components []bom.Component

	guard guard.ConstructorGuard
}

func NewReviseBomCommand(bomID, revisionID kernel.UUID, components []bom.Component) (ReviseBomCommand, error) {
	if err := errors.Join(bomID.Validate(), revisionID.Validate()); err != nil {
		return ReviseBomCommand{}, err
	}
	if len(components) == 0 {
		return ReviseBomCommand{}, bom.ErrComponentsAreMissing
	}

	return ReviseBomCommand{
		bomID:      bomID,
		revisionID: revisionID,
		components: append([]bom.Component(nil), components...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReviseBomCommand) Validate() error {
	return c.guard.Validate(ErrReviseBomCommandIsNotConstructed)
}

func (c ReviseBomCommand) BomID() kernel.UUID {
	return c.bomID
}

func (c ReviseBomCommand) RevisionID() kernel.UUID {
	return c.revisionID
}

func (c ReviseBomCommand) Components() []bom.Component {
	return c.components
}
