package commands

import (
	"errors"
	"fmt"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workcenter"
	"manufacturing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordDowntimeCommandIsNotConstructed = errors.New(
	"RecordDowntimeCommand must be created via NewRecordDowntimeCommand constructor",
)

// RecordDowntimeCommand adds hours to a work center's cumulative downtime.
type RecordDowntimeCommand struct { //nolint:recvcheck //using for validation
	centerID kernel.UUID
	hours    decimal.Decimal

	guard guard.ConstructorGuard
}

func NewRecordDowntimeCommand(centerID kernel.UUID, hours decimal.Decimal) (RecordDowntimeCommand, error) {
	if err := centerID.Validate(); err != nil {
		return RecordDowntimeCommand{}, err
	}
	if !hours.IsPositive() {
		return RecordDowntimeCommand{}, fmt.Errorf("%w: %s is not greater than 0", workcenter.ErrInvalidDowntime, hours)
	}

	return RecordDowntimeCommand{
		centerID: centerID,
		hours:    hours,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RecordDowntimeCommand) Validate() error {
	return c.guard.Validate(ErrRecordDowntimeCommandIsNotConstructed)
}

func (c RecordDowntimeCommand) CenterID() kernel.UUID {
	return c.centerID
}

func (c RecordDowntimeCommand) Hours() decimal.Decimal {
	return c.hours
}
