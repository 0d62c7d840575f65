package reservationrepo

import (
	"context"

	"manufacturing/internal/adapters/out/postgres/pgerr"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/stock"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReservationRepository implements ports.ReservationRepository using GORM.
type GormReservationRepository struct {
	db *gorm.DB
}

func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// Save inserts new reservations and overwrites the quantities of existing ones.
func (r *GormReservationRepository) Save(ctx context.Context, reservations ...*stock.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	dtos := make([]ReservationDTO, 0, len(reservations))
	for _, res := range reservations {
		if err := res.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(res))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"outstanding", "consumed"}),
		}).
		Create(&dtos).Error
}

// GetByOrderForUpdate locks the reservations of orderID in stock item order.
func (r *GormReservationRepository) GetByOrderForUpdate(ctx context.Context, orderID kernel.UUID) ([]*stock.Reservation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReservationDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("order_id = ?", orderID.Bytes()).
		Order("stock_item_id").
		Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate(err, "reservation", "could not be locked")
	}

	reservations := make([]*stock.Reservation, 0, len(dtos))
	for _, dto := range dtos {
		res, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

func (r *GormReservationRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&ReservationDTO{}, "order_id = ?", orderID.Bytes()).Error
}
