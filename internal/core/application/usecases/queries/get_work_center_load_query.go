package queries

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrGetWorkCenterLoadQueryIsNotConstructed = errors.New(
	"GetWorkCenterLoadQuery must be created via NewGetWorkCenterLoadQuery constructor",
)

// GetWorkCenterLoadQuery reads the current load of one work center.
type GetWorkCenterLoadQuery struct {
	workCenterID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWorkCenterLoadQuery(workCenterID kernel.UUID) (GetWorkCenterLoadQuery, error) {
	if err := workCenterID.Validate(); err != nil {
		return GetWorkCenterLoadQuery{}, err
	}

	return GetWorkCenterLoadQuery{
		workCenterID: workCenterID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetWorkCenterLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkCenterLoadQueryIsNotConstructed)
}

func (q GetWorkCenterLoadQuery) WorkCenterID() kernel.UUID {
	return q.workCenterID
}

type WorkCenterLoadResponse struct {
	WorkCenterID kernel.UUID
	Load         int
	Capacity     int
}
