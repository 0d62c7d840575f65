package workcenterrepo

import (
	"context"
	"errors"
	"fmt"

	"manufacturing/internal/adapters/out/postgres/pgerr"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workcenter"
	"manufacturing/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkCenterRepository implements ports.WorkCenterRepository using GORM.
type GormWorkCenterRepository struct {
	db *gorm.DB
}

func NewGormWorkCenterRepository(db *gorm.DB) *GormWorkCenterRepository {
	return &GormWorkCenterRepository{db: db}
}

func (r *GormWorkCenterRepository) Add(ctx context.Context, wc *workcenter.WorkCenter) error {
	if err := wc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(wc)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormWorkCenterRepository) Update(ctx context.Context, wc *workcenter.WorkCenter) error {
	if err := wc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(wc)
	result := r.db.WithContext(ctx).Model(&WorkCenterDTO{}).Where("id = ?", dto.ID).
		Select("name", "cost_per_hour", "capacity", "downtime_hours").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormWorkCenterRepository) Get(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormWorkCenterRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormWorkCenterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WorkCenterDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("%w: %w", workcenter.ErrWorkCenterInUse, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work center", id.String())
	}
	return nil
}

func (r *GormWorkCenterRepository) get(q *gorm.DB, id kernel.UUID) (*workcenter.WorkCenter, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkCenterDTO
	if err := q.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work center", id.String())
		}
		return nil, pgerr.Translate(err, "work center", "could not be locked")
	}

	return toDomain(dto)
}
