// Package errs provides the typed errors of the manufacturing service.
//
// Error types:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or out of range
//   - ObjectNotFoundError: an object cannot be found
//   - ConflictError: a business rule rejects an otherwise valid request
//   - IntegrityError: an object cannot be removed or changed because other
//     records still depend on it
//
// Every type has a sentinel (ErrValueIsRequired, ErrConflict, ...) reachable
// through errors.Is, a constructor with and without a cause, and Unwrap.
//
// KindOf classifies any error chain into one of the failure kinds the
// transport layer reports to callers.
package errs
