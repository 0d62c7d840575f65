package queries

import (
	"errors"

	"manufacturing/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery counts orders by effective status.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

type DashboardResponse struct {
	Total      int
	Draft      int
	InProgress int
	Done       int
	Delayed    int
	Cancelled  int
}
