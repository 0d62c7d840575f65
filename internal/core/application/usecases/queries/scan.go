package queries

import (
	"database/sql"
	"time"

	"manufacturing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

func toKernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	out, err := toKernelUUID(id.UUID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func toOptionalTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	out := t.Time.UTC()
	return &out
}
