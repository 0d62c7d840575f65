// Package orderrepo persists manufacturing order aggregates.
package orderrepo

import (
	"time"

	"manufacturing/internal/adapters/out/postgres/bomrepo"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of orders. Status is stored as the derived value; readers
// apply order.EffectiveStatus for the delivery date.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Customer     string          `gorm:"type:varchar(255);not null"`
	Product      string          `gorm:"type:varchar(255);not null"`
	BomID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Bom          *bomrepo.BomDTO `gorm:"foreignKey:BomID;constraint:OnDelete:RESTRICT"`
	Quantity     int             `gorm:"type:int;not null;check:chk_orders_quantity,quantity > 0"`
	PlacedOn     time.Time       `gorm:"type:date;not null"`
	DeliveryOn   time.Time       `gorm:"type:date;not null;index;check:chk_orders_delivery,delivery_on >= placed_on"`
	Status       int             `gorm:"type:int;not null;index"`
	Availability int             `gorm:"type:int;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Bytes(),
		Customer:     o.Customer(),
		Product:      o.Product(),
		BomID:        o.BomID().Bytes(),
		Quantity:     o.Quantity(),
		PlacedOn:     o.PlacedOn().Time(),
		DeliveryOn:   o.DeliveryOn().Time(),
		Status:       int(o.Status()),
		Availability: int(o.Availability()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bomID, err := kernel.UUIDFromBytes(dto.BomID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Customer,
		dto.Product,
		bomID,
		dto.Quantity,
		kernel.DateOf(dto.PlacedOn),
		kernel.DateOf(dto.DeliveryOn),
		order.Status(dto.Status),
		order.Availability(dto.Availability),
	)
}
