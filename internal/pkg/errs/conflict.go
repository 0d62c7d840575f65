package errs

import (
	"errors"
	"fmt"
)

var ErrConflict = errors.New("conflict")

// ConflictError reports a request rejected by a business rule, such as
// reserving more stock than is available.
type ConflictError struct {
	Rule  string
	Cause error
}

func NewConflictError(rule string) *ConflictError {
	return &ConflictError{Rule: rule}
}

func NewConflictErrorWithCause(rule string, cause error) *ConflictError {
	return &ConflictError{
		Rule:  rule,
		Cause: cause,
	}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrConflict, e.Rule), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
