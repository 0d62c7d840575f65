// Package workcenterrepo persists work centers.
package workcenterrepo

import (
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workcenter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WorkCenterDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	CostPerHour   decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_work_centers_cost,cost_per_hour >= 0"`
	Capacity      int             `gorm:"type:int;not null;check:chk_work_centers_capacity,capacity >= 1"`
	DowntimeHours decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (WorkCenterDTO) TableName() string {
	return "work_centers"
}

func fromDomain(wc *workcenter.WorkCenter) WorkCenterDTO {
	return WorkCenterDTO{
		ID:            wc.ID().Bytes(),
		Name:          wc.Name(),
		CostPerHour:   wc.CostPerHour(),
		Capacity:      wc.Capacity(),
		DowntimeHours: wc.Downtime(),
	}
}

func toDomain(dto WorkCenterDTO) (*workcenter.WorkCenter, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return workcenter.RestoreWorkCenter(id, dto.Name, dto.CostPerHour, dto.Capacity, dto.DowntimeHours)
}
