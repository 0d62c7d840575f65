package order

import (
	"time"

	"manufacturing/internal/core/domain/model/kernel"
)

type EventType string

const (
	EventPlaced        EventType = "order.placed"
	EventStatusChanged EventType = "order.status_changed"
	EventCancelled     EventType = "order.cancelled"
	EventDeleted       EventType = "order.deleted"
)

// Event is a fact about an order, published after the transaction that
// recorded it commits.
type Event struct {
	Type       EventType
	OrderID    kernel.UUID
	Status     Status
	OccurredAt time.Time
}
