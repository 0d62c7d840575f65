package outboxrepo

import (
	"encoding/json"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/ports"
)

// OrderEventPayload is the JSON body of an order event on every sink.
type OrderEventPayload struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewOrderEventMessage wraps e for topic, keyed by order id so one order's
// events stay ordered on a partition.
func NewOrderEventMessage(topic string, e order.Event) (ports.OutboxMessage, error) {
	payload, err := json.Marshal(OrderEventPayload{
		Type:       string(e.Type),
		OrderID:    e.OrderID.String(),
		Status:     e.Status.String(),
		OccurredAt: e.OccurredAt.UTC(),
	})
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:        kernel.NewUUID(),
		Topic:     topic,
		Key:       e.OrderID.String(),
		Payload:   payload,
		CreatedAt: e.OccurredAt,
	}, nil
}
