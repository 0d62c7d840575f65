package stock

import (
	"time"

	"manufacturing/internal/core/domain/model/kernel"
)

// MovementKind names the ledger operation that produced a movement.
type MovementKind int

const (
	UnknownMovement MovementKind = iota
	MovementReserve
	MovementRelease
	MovementConsume
	MovementReplenish
)

func (k MovementKind) String() string {
	switch k {
	case MovementReserve:
		return "reserve"
	case MovementRelease:
		return "release"
	case MovementConsume:
		return "consume"
	case MovementReplenish:
		return "replenish"
	default:
		return "unknown"
	}
}

// Movement is an append-only ledger entry. OrderID is nil for replenishments.
type Movement struct {
	ID         kernel.UUID
	ItemID     kernel.UUID
	OrderID    *kernel.UUID
	Kind       MovementKind
	Quantity   int
	OccurredAt time.Time
}
