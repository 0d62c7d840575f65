package queries

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrListWorkOrdersQueryIsNotConstructed = errors.New(
	"ListWorkOrdersQuery must be created via NewListWorkOrdersQuery constructor",
)

// ListWorkOrdersQuery reads the work orders of every order, or only those
// assigned to one work center.
type ListWorkOrdersQuery struct {
	workCenterID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListWorkOrdersQuery builds the query. A nil workCenterID lists all work orders.
func NewListWorkOrdersQuery(workCenterID *kernel.UUID) (ListWorkOrdersQuery, error) {
	if workCenterID != nil {
		if err := workCenterID.Validate(); err != nil {
			return ListWorkOrdersQuery{}, err
		}
	}

	return ListWorkOrdersQuery{
		workCenterID: workCenterID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkOrdersQueryIsNotConstructed)
}

func (q ListWorkOrdersQuery) WorkCenterID() *kernel.UUID { return q.workCenterID }
