package workcenter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrWorkCenterIsNotConstructed = errors.New("WorkCenter must be created via NewWorkCenter or RestoreWorkCenter constructor")
	ErrNameIsRequired             = errs.NewValueIsRequiredError("name")
	ErrInvalidCapacity            = errs.NewValueIsInvalidError("capacity")
	ErrInvalidCost                = errs.NewValueIsInvalidError("cost per hour")
	ErrInvalidDowntime            = errs.NewValueIsInvalidError("downtime hours")

	// ErrCapacityExceeded rejects admitting a work order into a full work center.
	ErrCapacityExceeded = errs.NewConflictError("work center capacity exceeded")
	ErrWorkCenterInUse  = errs.NewIntegrityError("work center", "has work orders assigned")
)

// maxAmount bounds cost per hour and downtime hours; both are kept in cents.
var maxAmount = decimal.New(1, 10)

type WorkCenter struct {
	id          kernel.UUID
	name        string
	costPerHour decimal.Decimal
	capacity    int
	downtime    decimal.Decimal
	guard       guard.ConstructorGuard
}

func NewWorkCenter(id kernel.UUID, name string, costPerHour decimal.Decimal, capacity int) (*WorkCenter, error) {
	return RestoreWorkCenter(id, name, costPerHour, capacity, decimal.Zero)
}

func RestoreWorkCenter(
	id kernel.UUID,
	name string,
	costPerHour decimal.Decimal,
	capacity int,
	downtime decimal.Decimal,
) (*WorkCenter, error) {
	wc := &WorkCenter{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wc.setID(id),
		wc.setName(name),
		wc.setCostPerHour(costPerHour),
		wc.setCapacity(capacity),
		wc.setDowntime(downtime),
	); err != nil {
		return nil, err
	}

	return wc, nil
}

func (w *WorkCenter) Validate() error {
	if w == nil {
		return ErrWorkCenterIsNotConstructed
	}
	return w.guard.Validate(ErrWorkCenterIsNotConstructed)
}

func (w *WorkCenter) ID() kernel.UUID {
	return w.id
}

func (w *WorkCenter) Name() string {
	return w.name
}

func (w *WorkCenter) CostPerHour() decimal.Decimal {
	return w.costPerHour
}

func (w *WorkCenter) Capacity() int {
	return w.capacity
}

// Downtime is the cumulative number of hours the center was unavailable.
func (w *WorkCenter) Downtime() decimal.Decimal {
	return w.downtime
}

// Admit checks that one more work order fits next to load occupying ones.
func (w *WorkCenter) Admit(load int) error {
	if load >= w.capacity {
		return fmt.Errorf("%w: %s runs %d of %d", ErrCapacityExceeded, w.name, load, w.capacity)
	}
	return nil
}

// RecordDowntime adds hours to the cumulative downtime.
func (w *WorkCenter) RecordDowntime(hours decimal.Decimal) error {
	if !hours.IsPositive() {
		return fmt.Errorf("%w: %s is not greater than 0", ErrInvalidDowntime, hours)
	}
	if err := checkAmount(hours, ErrInvalidDowntime); err != nil {
		return err
	}
	return w.setDowntime(w.downtime.Add(hours))
}

// LaborCost prices d of work at the center's hourly rate, rounded to cents.
func (w *WorkCenter) LaborCost(d time.Duration) decimal.Decimal {
	return LaborCost(w.costPerHour, d)
}

// LaborCost prices d at costPerHour, rounded to cents.
func LaborCost(costPerHour decimal.Decimal, d time.Duration) decimal.Decimal {
	if d <= 0 {
		return decimal.Zero
	}
	hours := decimal.NewFromFloat(d.Hours())
	return costPerHour.Mul(hours).Round(2)
}

func (w *WorkCenter) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkCenter) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	w.name = name
	return nil
}

func (w *WorkCenter) setCostPerHour(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidCost, cost)
	}
	if err := checkAmount(cost, ErrInvalidCost); err != nil {
		return err
	}
	w.costPerHour = cost
	return nil
}

func (w *WorkCenter) setCapacity(capacity int) error {
	if capacity < 1 || capacity > kernel.MaxQuantity {
		return fmt.Errorf("%w: %d is outside 1..%d", ErrInvalidCapacity, capacity, kernel.MaxQuantity)
	}
	w.capacity = capacity
	return nil
}

func (w *WorkCenter) setDowntime(hours decimal.Decimal) error {
	if hours.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidDowntime, hours)
	}
	if err := checkAmount(hours, ErrInvalidDowntime); err != nil {
		return err
	}
	w.downtime = hours
	return nil
}

// checkAmount rejects sub-cent precision and values of maxAmount or more.
func checkAmount(d decimal.Decimal, sentinel error) error {
	if !d.Equal(d.Round(2)) {
		return fmt.Errorf("%w: %s has more than 2 decimal places", sentinel, d)
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w: %s is not below %s", sentinel, d, maxAmount)
	}
	return nil
}
