package errs

import (
	"errors"
	"fmt"
)

var ErrIntegrity = errors.New("integrity violation")

// IntegrityError reports that Object cannot be changed or removed while
// other records depend on it.
type IntegrityError struct {
	Object string
	Reason string
	Cause  error
}

func NewIntegrityError(object, reason string) *IntegrityError {
	return &IntegrityError{
		Object: object,
		Reason: reason,
	}
}

func NewIntegrityErrorWithCause(object, reason string, cause error) *IntegrityError {
	return &IntegrityError{
		Object: object,
		Reason: reason,
		Cause:  cause,
	}
}

func (e *IntegrityError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrIntegrity, e.Object, e.Reason), e.Cause)
}

func (e *IntegrityError) Unwrap() error {
	return ErrIntegrity
}
