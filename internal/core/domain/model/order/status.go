package order

import (
	"fmt"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

// Status is the lifecycle state of a manufacturing order.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Draft
	InProgress
	Done
	Delayed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Draft:      "Draft",
		InProgress: "InProgress",
		Done:       "Done",
		Delayed:    "Delayed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "Draft",
		InProgress: "InProgress",
		Done:       "Done",
		Delayed:    "Delayed",
		Cancelled:  "Cancelled",
	}
}

func ParseStatus(s string) (Status, error) {
	for st, name := range getValidStatusStrings() {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the order accepts no further work.
func (s Status) IsTerminal() bool {
	return s == Done || s == Cancelled
}

// DeriveStatus computes the status of an order of quantity units that
// currently has status current, with the given work order progress, delivery
// date and today's date. An order is Done only when work orders cover its
// whole quantity and all of them are Done.
func DeriveStatus(current Status, p Progress, quantity int, deliveryOn, today kernel.Date) Status {
	switch {
	case current == Cancelled:
		return Cancelled
	case p.Total > 0 && p.Done == p.Total && p.Scheduled >= quantity:
		return Done
	case deliveryOn.Before(today):
		return Delayed
	case p.Started > 0:
		return InProgress
	default:
		return Draft
	}
}

// EffectiveStatus is the status a reader should see for a stored status:
// a non-terminal order whose delivery date has passed reads as Delayed even
// if nothing re-derived it since.
func EffectiveStatus(stored Status, deliveryOn, today kernel.Date) Status {
	if !stored.IsTerminal() && deliveryOn.Before(today) {
		return Delayed
	}
	return stored
}
