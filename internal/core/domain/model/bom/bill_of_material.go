package bom

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrBillOfMaterialIsNotConstructed = errors.New(
		"BillOfMaterial must be created via NewBillOfMaterial or RestoreBillOfMaterial constructor",
	)
	ErrNameIsRequired       = errs.NewValueIsRequiredError("name")
	ErrComponentsAreMissing = errs.NewValueIsRequiredError("components")

	ErrInvalidQuantity  = errs.NewValueIsInvalidError("component quantity")
	ErrInvalidComponent = errs.NewValueIsInvalidError("component")
	// ErrBomInUse rejects deleting a bill of material that a non-terminal order references.
	ErrBomInUse = errs.NewIntegrityError("bill of material", "is referenced by an order that is neither done nor cancelled")
)

// BillOfMaterial is an immutable, versioned recipe.
type BillOfMaterial struct {
	id         kernel.UUID
	name       string
	version    int
	previousID *kernel.UUID
	components []Component
	guard      guard.ConstructorGuard
}

// NewBillOfMaterial creates version 1 of a recipe. Components must be
// non-empty and must not list the same stock item twice.
func NewBillOfMaterial(id kernel.UUID, name string, components []Component) (*BillOfMaterial, error) {
	return RestoreBillOfMaterial(id, name, 1, nil, components)
}

func RestoreBillOfMaterial(
	id kernel.UUID,
	name string,
	version int,
	previousID *kernel.UUID,
	components []Component,
) (*BillOfMaterial, error) {
	b := &BillOfMaterial{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setVersion(version, previousID),
		b.setComponents(components),
	); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *BillOfMaterial) Validate() error {
	if b == nil {
		return ErrBillOfMaterialIsNotConstructed
	}
	return b.guard.Validate(ErrBillOfMaterialIsNotConstructed)
}

func (b *BillOfMaterial) ID() kernel.UUID {
	return b.id
}

func (b *BillOfMaterial) Name() string {
	return b.name
}

func (b *BillOfMaterial) Version() int {
	return b.version
}

// PreviousID is the version this one revised, nil for version 1.
func (b *BillOfMaterial) PreviousID() *kernel.UUID {
	return b.previousID
}

func (b *BillOfMaterial) Components() []Component {
	return slices.Clone(b.components)
}

// ItemIDs lists the referenced stock items in component order.
func (b *BillOfMaterial) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(b.components))
	for _, c := range b.components {
		ids = append(ids, c.ItemID())
	}
	return ids
}

// Requirements multiplies every component by qty. A product that exceeds
// kernel.MaxQuantity for any line is out of range.
func (b *BillOfMaterial) Requirements(qty int) ([]Requirement, error) {
	if qty <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", qty))
	}

	reqs := make([]Requirement, 0, len(b.components))
	for _, c := range b.components {
		if limit := kernel.MaxQuantity / c.PerUnit(); qty > limit {
			return nil, errs.NewValueIsOutOfRangeErrorWithCause("quantity", qty, 1, limit,
				fmt.Errorf("%d per unit of item %s", c.PerUnit(), c.ItemID()))
		}
		reqs = append(reqs, Requirement{
			ItemID:   c.ItemID(),
			Quantity: c.PerUnit() * qty,
		})
	}
	return reqs, nil
}

// Revise produces the next version of the recipe under newID.
func (b *BillOfMaterial) Revise(newID kernel.UUID, components []Component) (*BillOfMaterial, error) {
	prev := b.id
	return RestoreBillOfMaterial(newID, b.name, b.version+1, &prev, components)
}

func (b *BillOfMaterial) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *BillOfMaterial) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	b.name = name
	return nil
}

func (b *BillOfMaterial) setVersion(version int, previousID *kernel.UUID) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("version", fmt.Errorf("%d is lower than 1", version))
	}
	if version > 1 && previousID == nil {
		return errs.NewVersionIsInvalidError("version", fmt.Errorf("version %d has no previous version", version))
	}
	if previousID != nil {
		if err := previousID.Validate(); err != nil {
			return err
		}
	}
	b.version = version
	b.previousID = previousID
	return nil
}

func (b *BillOfMaterial) setComponents(components []Component) error {
	if len(components) == 0 {
		return ErrComponentsAreMissing
	}

	seen := make(map[kernel.UUID]struct{}, len(components))
	for _, c := range components {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, dup := seen[c.ItemID()]; dup {
			return fmt.Errorf("%w: item %s is listed twice", ErrInvalidComponent, c.ItemID())
		}
		seen[c.ItemID()] = struct{}{}
	}

	b.components = slices.Clone(components)
	return nil
}
