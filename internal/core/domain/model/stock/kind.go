package stock

import (
	"fmt"

	"manufacturing/internal/pkg/errs"
)

// Kind classifies what a stock item is used for.
type Kind int

const (
	UnknownKind Kind = iota
	Raw
	Component
	Finished
	Consumable
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Raw:        "raw",
		Component:  "component",
		Finished:   "finished",
		Consumable: "consumable",
	}
}

// ParseKind maps the wire name of a kind back to its value.
func ParseKind(s string) (Kind, error) {
	for k, name := range getKindStrings() {
		if name == s {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a stock item kind", s))
}

func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}
