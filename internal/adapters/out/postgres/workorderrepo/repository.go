package workorderrepo

import (
	"context"
	"errors"

	"manufacturing/internal/adapters/out/postgres/pgerr"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkOrderRepository implements ports.WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db *gorm.DB
}

func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

func (r *GormWorkOrderRepository) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	if err := wo.Validate(); err != nil {
		return err
	}

	dto := fromDomain(wo)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormWorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	if err := wo.Validate(); err != nil {
		return err
	}

	dto := fromDomain(wo)
	result := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).Where("id = ?", dto.ID).
		Select("status", "started_at", "finished_at", "comments").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	return r.get(ctx, id, false)
}

func (r *GormWorkOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	return r.get(ctx, id, true)
}

func (r *GormWorkOrderRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto WorkOrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work order", id.String())
		}
		return nil, pgerr.Translate(err, "work order", "could not be locked")
	}

	return toDomain(dto)
}

// ListByOrder returns the work orders of orderID, oldest first.
func (r *GormWorkOrderRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*workorder.WorkOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkOrderDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	wos := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		wo, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		wos = append(wos, wo)
	}
	return wos, nil
}

// CountActiveByWorkCenter counts the work orders that occupy the center.
func (r *GormWorkOrderRepository) CountActiveByWorkCenter(ctx context.Context, workCenterID kernel.UUID) (int64, error) {
	if err := workCenterID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).
		Where("work_center_id = ? AND status IN ?", workCenterID.Bytes(), ActiveStatuses()).
		Count(&count).Error
	return count, err
}

func (r *GormWorkOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WorkOrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work order", id.String())
	}
	return nil
}

func (r *GormWorkOrderRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&WorkOrderDTO{}, "order_id = ?", orderID.Bytes()).Error
}

// ActiveStatuses lists the stored status values that count toward a work center's load.
func ActiveStatuses() []int {
	var out []int
	for _, s := range []workorder.Status{workorder.Planned, workorder.InProgress, workorder.Blocked, workorder.Done} {
		if s.OccupiesCapacity() {
			out = append(out, int(s))
		}
	}
	return out
}
