// Package clock abstracts the current time so that date-dependent rules,
// such as deriving a Delayed order, can be exercised with a fixed instant.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}
