package order

import (
	"fmt"

	"manufacturing/internal/pkg/errs"
)

// Availability tells what became of the stock reserved at placement.
type Availability int

const (
	UnknownAvailability Availability = iota
	// Reserved: components are held for the order.
	Reserved
	// Consumed: production finished and the reservation is used up.
	Consumed
	// Released: the order was cancelled and the reservation returned to stock.
	Released
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		Reserved: "Reserved",
		Consumed: "Consumed",
		Released: "Released",
	}
}

func (a Availability) Validate() error {
	if _, ok := getAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

func (a Availability) String() string {
	if s, ok := getAvailabilityStrings()[a]; ok {
		return s
	}
	return "Unknown"
}
