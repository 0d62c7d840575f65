package queries

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListWorkCentersQueryIsNotConstructed = errors.New(
	"ListWorkCentersQuery must be created via NewListWorkCentersQuery constructor",
)

// ListWorkCentersQuery reads every work center with its current load.
type ListWorkCentersQuery struct {
	guard guard.ConstructorGuard
}

func NewListWorkCentersQuery() ListWorkCentersQuery {
	return ListWorkCentersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListWorkCentersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkCentersQueryIsNotConstructed)
}

// WorkCenterResponse is a work center with the number of its Planned or
// InProgress work orders.
type WorkCenterResponse struct {
	ID            kernel.UUID
	Name          string
	CostPerHour   decimal.Decimal
	Capacity      int
	DowntimeHours decimal.Decimal
	Load          int
}
