package kernel

import (
	"fmt"
	"time"

	"manufacturing/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date")

// Date is a calendar day without time of day or zone. Order placement and
// delivery are agreed in whole days, so comparisons ignore the clock.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not a %s date", s, dateLayout))
	}
	return DateOf(t), nil
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
