// Package bomrepo persists versioned bills of material and their components.
package bomrepo

import (
	"time"

	"manufacturing/internal/adapters/out/postgres/stockrepo"
	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BomDTO is a row of boms. Deleted rows keep their id so that orders placed
// against them still resolve.
type BomDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name       string         `gorm:"type:varchar(255);not null;index"`
	Version    int            `gorm:"type:int;not null;check:chk_boms_version,version >= 1"`
	PreviousID *uuid.UUID     `gorm:"type:uuid;index"`
	Components []ComponentDTO `gorm:"foreignKey:BomID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (BomDTO) TableName() string {
	return "boms"
}

// ComponentDTO is a row of bom_components. The composite key forbids listing
// one stock item twice in a recipe.
type ComponentDTO struct {
	BomID       uuid.UUID               `gorm:"type:uuid;primaryKey"`
	StockItemID uuid.UUID               `gorm:"type:uuid;primaryKey;index"`
	Position    int                     `gorm:"type:int;not null"`
	PerUnit     int                     `gorm:"type:int;not null;check:chk_bom_components_per_unit,per_unit > 0"`
	StockItem   *stockrepo.StockItemDTO `gorm:"foreignKey:StockItemID;constraint:OnDelete:RESTRICT"`
}

func (ComponentDTO) TableName() string {
	return "bom_components"
}

func fromDomain(b *bom.BillOfMaterial) BomDTO {
	bomID := b.ID().Bytes()

	var previousID *uuid.UUID
	if prev := b.PreviousID(); prev != nil {
		raw := prev.Bytes()
		previousID = &raw
	}

	components := make([]ComponentDTO, 0, len(b.Components()))
	for i, c := range b.Components() {
		components = append(components, ComponentDTO{
			BomID:       bomID,
			StockItemID: c.ItemID().Bytes(),
			Position:    i,
			PerUnit:     c.PerUnit(),
		})
	}

	return BomDTO{
		ID:         bomID,
		Name:       b.Name(),
		Version:    b.Version(),
		PreviousID: previousID,
		Components: components,
	}
}

func toDomain(dto BomDTO) (*bom.BillOfMaterial, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var previousID *kernel.UUID
	if dto.PreviousID != nil {
		prev, prevErr := kernel.UUIDFromBytes((*dto.PreviousID)[:])
		if prevErr != nil {
			return nil, prevErr
		}
		previousID = &prev
	}

	components := make([]bom.Component, 0, len(dto.Components))
	for _, cDto := range dto.Components {
		itemID, itemErr := kernel.UUIDFromBytes(cDto.StockItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		c, cErr := bom.NewComponent(itemID, cDto.PerUnit)
		if cErr != nil {
			return nil, cErr
		}
		components = append(components, c)
	}

	return bom.RestoreBillOfMaterial(id, dto.Name, dto.Version, previousID, components)
}
