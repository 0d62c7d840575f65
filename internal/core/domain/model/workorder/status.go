package workorder

import (
	"fmt"

	"manufacturing/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Planned
	InProgress
	Blocked
	Done
)

// ErrInvalidTransition rejects a status change outside the transition table.
var ErrInvalidTransition = errs.NewConflictError("invalid work order transition")

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Planned:    "Planned",
		InProgress: "InProgress",
		Blocked:    "Blocked",
		Done:       "Done",
	}
}

func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Done has no outgoing transitions
	return map[Status][]Status{
		Planned:    {InProgress},
		InProgress: {Done, Blocked},
		Blocked:    {InProgress},
	}
}

func ParseStatus(s string) (Status, error) {
	for st, name := range getStatusStrings() {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a work order status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// OccupiesCapacity reports whether a work order in this status counts toward
// its work center's load.
func (s Status) OccupiesCapacity() bool {
	return s == Planned || s == InProgress
}
