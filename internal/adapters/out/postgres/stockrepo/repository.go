package stockrepo

import (
	"context"
	"errors"
	"fmt"

	"manufacturing/internal/adapters/out/postgres/pgerr"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/stock"
	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockItemRepository implements ports.StockItemRepository using GORM.
type GormStockItemRepository struct {
	db *gorm.DB
}

func NewGormStockItemRepository(db *gorm.DB) *GormStockItemRepository {
	return &GormStockItemRepository{db: db}
}

// Add inserts a new item together with its opening movement.
func (r *GormStockItemRepository) Add(ctx context.Context, item *stock.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return r.appendMovements(ctx, item)
}

// Update writes the counters of an existing item and appends its new movements.
func (r *GormStockItemRepository) Update(ctx context.Context, item *stock.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&StockItemDTO{}).Where("id = ?", dto.ID).
		Select("name", "kind", "on_hand", "reserved").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.appendMovements(ctx, item)
}

func (r *GormStockItemRepository) Get(ctx context.Context, id kernel.UUID) (*stock.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate locks the requested rows in ascending id order.
func (r *GormStockItemRepository) GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*stock.Item, error) {
	ids = kernel.SortedUnique(ids)
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var dtos []StockItemDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate(err, "stock item", "could not be locked")
	}

	items := make([]*stock.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if len(items) != len(ids) {
		for i, id := range ids {
			if i >= len(items) || !items[i].ID().IsEqual(id) {
				return nil, errs.NewObjectNotFoundError("stock item", id.String())
			}
		}
	}

	return items, nil
}

// Delete removes an item and its movement history. Items still used by a
// bill of material or a reservation are kept.
func (r *GormStockItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&StockItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error, "stock item", "is referenced by a bill of material or a reservation")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stock item", id.String())
	}
	return nil
}

func (r *GormStockItemRepository) appendMovements(ctx context.Context, item *stock.Item) error {
	movements := movementsFromDomain(item.PullMovements())
	if len(movements) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&movements).Error; err != nil {
		return fmt.Errorf("append movements of %s: %w", item.ID(), err)
	}
	return nil
}
