// Package workorderrepo persists work orders.
package workorderrepo

import (
	"time"

	"manufacturing/internal/adapters/out/postgres/orderrepo"
	"manufacturing/internal/adapters/out/postgres/workcenterrepo"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

type WorkOrderDTO struct {
	ID           uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID                     `gorm:"type:uuid;not null;index"`
	WorkCenterID uuid.UUID                     `gorm:"type:uuid;not null;index:idx_work_orders_center_status"`
	OperatorID   uuid.UUID                     `gorm:"type:uuid;not null"`
	Quantity     int                           `gorm:"type:int;not null;check:chk_work_orders_quantity,quantity > 0"`
	Status       int                           `gorm:"type:int;not null;index:idx_work_orders_center_status"`
	StartedAt    *time.Time
	FinishedAt   *time.Time
	Comments     string                        `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time                     `gorm:"index"`
	Order        *orderrepo.OrderDTO           `gorm:"foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
	WorkCenter   *workcenterrepo.WorkCenterDTO `gorm:"foreignKey:WorkCenterID;constraint:OnDelete:RESTRICT"`
}

func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

func fromDomain(wo *workorder.WorkOrder) WorkOrderDTO {
	return WorkOrderDTO{
		ID:           wo.ID().Bytes(),
		OrderID:      wo.OrderID().Bytes(),
		WorkCenterID: wo.WorkCenterID().Bytes(),
		OperatorID:   wo.OperatorID().Bytes(),
		Quantity:     wo.Quantity(),
		Status:       int(wo.Status()),
		StartedAt:    wo.StartedAt(),
		FinishedAt:   wo.FinishedAt(),
		Comments:     wo.Comments(),
	}
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.OrderID, dto.WorkCenterID, dto.OperatorID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return workorder.RestoreWorkOrder(
		ids[0], ids[1], ids[2], ids[3],
		dto.Quantity,
		workorder.Status(dto.Status),
		dto.StartedAt,
		dto.FinishedAt,
		dto.Comments,
	)
}
