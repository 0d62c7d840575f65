// Package reservationrepo persists the stock held for each order.
package reservationrepo

import (
	"manufacturing/internal/adapters/out/postgres/orderrepo"
	"manufacturing/internal/adapters/out/postgres/stockrepo"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// ReservationDTO is a row of reservations, unique per order and stock item.
type ReservationDTO struct {
	ID          uuid.UUID               `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_order_item"`
	StockItemID uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_order_item;index"`
	Outstanding int                     `gorm:"type:int;not null;check:chk_reservations_outstanding,outstanding >= 0"`
	Consumed    int                     `gorm:"type:int;not null;check:chk_reservations_consumed,consumed >= 0"`
	Order       *orderrepo.OrderDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
	StockItem   *stockrepo.StockItemDTO `gorm:"foreignKey:StockItemID;constraint:OnDelete:RESTRICT"`
}

func (ReservationDTO) TableName() string {
	return "reservations"
}

func fromDomain(r *stock.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:          r.ID().Bytes(),
		OrderID:     r.OrderID().Bytes(),
		StockItemID: r.ItemID().Bytes(),
		Outstanding: r.Outstanding(),
		Consumed:    r.Consumed(),
	}
}

func toDomain(dto ReservationDTO) (*stock.Reservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.StockItemID[:])
	if err != nil {
		return nil, err
	}

	return stock.RestoreReservation(id, orderID, itemID, dto.Outstanding, dto.Consumed)
}
