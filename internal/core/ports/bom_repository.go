package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/domain/model/kernel"
)

// BomRepository persists bills of material. Stored versions are never
// modified; a revision is a new row pointing at its predecessor.
type BomRepository interface {
	Add(ctx context.Context, b *bom.BillOfMaterial) error

	// Get returns a bill of material by id, including deleted ones so that
	// orders placed against them can still be read.
	Get(ctx context.Context, id kernel.UUID) (*bom.BillOfMaterial, error)

	// GetForShare returns a live bill of material under a shared row lock,
	// keeping it from being deleted while an order is placed against it.
	GetForShare(ctx context.Context, id kernel.UUID) (*bom.BillOfMaterial, error)

	// GetForUpdate returns a live bill of material under an exclusive row lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*bom.BillOfMaterial, error)

	// Delete marks the bill of material deleted.
	Delete(ctx context.Context, id kernel.UUID) error
}
