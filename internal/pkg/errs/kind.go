package errs

import "errors"

// Kind is the failure class reported at the service boundary.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindIntegrity  Kind = "integrity"
	KindInternal   Kind = "internal"
)

// KindOf classifies err by the first sentinel found in its chain.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrIntegrity):
		return KindIntegrity
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrVersionIsInvalid):
		return KindValidation
	default:
		return KindInternal
	}
}
