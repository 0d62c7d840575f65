// Package stockrepo persists stock items and their movement history.
package stockrepo

import (
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// StockItemDTO is a row of stock_items. The check constraint repeats the
// counter invariants so the database rejects a write that breaks them.
type StockItemDTO struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Name      string             `gorm:"type:varchar(255);not null"`
	Kind      string             `gorm:"type:varchar(32);not null"`
	OnHand    int                `gorm:"type:int;not null;check:chk_stock_items_on_hand,on_hand >= 0"`
	Reserved  int                `gorm:"type:int;not null;check:chk_stock_items_reserved,reserved >= 0 AND reserved <= on_hand"`
	Movements []StockMovementDTO `gorm:"foreignKey:StockItemID;constraint:OnDelete:CASCADE"`
}

func (StockItemDTO) TableName() string {
	return "stock_items"
}

// StockMovementDTO is an append-only row of stock_movements.
type StockMovementDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StockItemID uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	Kind        string     `gorm:"type:varchar(32);not null"`
	Quantity    int        `gorm:"type:int;not null;check:chk_stock_movements_quantity,quantity > 0"`
	OccurredAt  time.Time  `gorm:"not null;index"`
}

func (StockMovementDTO) TableName() string {
	return "stock_movements"
}

func fromDomain(item *stock.Item) StockItemDTO {
	return StockItemDTO{
		ID:       item.ID().Bytes(),
		Name:     item.Name(),
		Kind:     item.Kind().String(),
		OnHand:   item.OnHand(),
		Reserved: item.Reserved(),
	}
}

func movementsFromDomain(movements []stock.Movement) []StockMovementDTO {
	dtos := make([]StockMovementDTO, 0, len(movements))
	for _, m := range movements {
		var orderID *uuid.UUID
		if m.OrderID != nil {
			raw := m.OrderID.Bytes()
			orderID = &raw
		}
		dtos = append(dtos, StockMovementDTO{
			ID:          m.ID.Bytes(),
			StockItemID: m.ItemID.Bytes(),
			OrderID:     orderID,
			Kind:        m.Kind.String(),
			Quantity:    m.Quantity,
			OccurredAt:  m.OccurredAt,
		})
	}
	return dtos
}

func toDomain(dto StockItemDTO) (*stock.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := stock.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	return stock.RestoreItem(id, dto.Name, kind, dto.OnHand, dto.Reserved)
}
