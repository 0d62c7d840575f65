package bomrepo

import (
	"context"
	"errors"
	"fmt"

	"manufacturing/internal/adapters/out/postgres/pgerr"
	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBomRepository implements ports.BomRepository using GORM.
type GormBomRepository struct {
	db *gorm.DB
}

func NewGormBomRepository(db *gorm.DB) *GormBomRepository {
	return &GormBomRepository{db: db}
}

// Add inserts a bill of material with its components. A component that
// points at a missing stock item fails with bom.ErrInvalidComponent.
func (r *GormBomRepository) Add(ctx context.Context, b *bom.BillOfMaterial) error {
	if err := b.Validate(); err != nil {
		return err
	}

	dto := fromDomain(b)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("%w: %w", bom.ErrInvalidComponent, err)
		}
		return err
	}
	return nil
}

func (r *GormBomRepository) Get(ctx context.Context, id kernel.UUID) (*bom.BillOfMaterial, error) {
	return r.get(ctx, r.db.WithContext(ctx).Unscoped(), id)
}

func (r *GormBomRepository) GetForShare(ctx context.Context, id kernel.UUID) (*bom.BillOfMaterial, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "SHARE"}), id)
}

func (r *GormBomRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*bom.BillOfMaterial, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// Delete soft-deletes the bill of material. Its components stay for the
// orders that were placed against it.
func (r *GormBomRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BomDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bill of material", id.String())
	}
	return nil
}

func (r *GormBomRepository) get(ctx context.Context, q *gorm.DB, id kernel.UUID) (*bom.BillOfMaterial, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BomDTO
	err := q.Preload("Components", func(db *gorm.DB) *gorm.DB {
		return db.WithContext(ctx).Order("position")
	}).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bill of material", id.String())
		}
		return nil, pgerr.Translate(err, "bill of material", "could not be locked")
	}

	return toDomain(dto)
}
