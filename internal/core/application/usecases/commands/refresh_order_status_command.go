package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrRefreshOrderStatusCommandIsNotConstructed = errors.New(
	"RefreshOrderStatusCommand must be created via NewRefreshOrderStatusCommand constructor",
)

// RefreshOrderStatusCommand re-derives and stores an order's status.
type RefreshOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRefreshOrderStatusCommand(orderID kernel.UUID) (RefreshOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RefreshOrderStatusCommand{}, err
	}

	return RefreshOrderStatusCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RefreshOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrRefreshOrderStatusCommandIsNotConstructed)
}

func (c RefreshOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}
