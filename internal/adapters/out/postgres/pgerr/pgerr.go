// Package pgerr turns PostgreSQL failures that callers can act on into
// errors from internal/pkg/errs.
package pgerr

import (
	"errors"
	"fmt"

	"manufacturing/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const codeLockNotAvailable = "55P03"

// ErrLockTimeout is wrapped by Translate when a row lock could not be taken
// within lock_timeout. It is a conflict.
var ErrLockTimeout = errs.NewConflictError("row lock wait timed out")

// Translate maps lock timeouts to a conflict and foreign key violations to an
// integrity error about object. Other errors are returned unchanged.
func Translate(err error, object, reason string) error {
	if err == nil {
		return nil
	}

	if IsLockTimeout(err) {
		return fmt.Errorf("%w: %w", ErrLockTimeout, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewIntegrityErrorWithCause(object, reason, err)
	}
	return err
}

// IsLockTimeout reports whether err came from an expired lock_timeout.
func IsLockTimeout(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeLockNotAvailable
}
