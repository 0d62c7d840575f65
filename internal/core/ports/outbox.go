package ports

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
)

// OutboxMessage is an event written in the same transaction as the state
// change it describes and delivered after commit.
type OutboxMessage struct {
	ID        kernel.UUID
	Topic     string
	Key       string
	Payload   []byte
	Retries   int
	CreatedAt time.Time
}

// OutboxRepository reads and acknowledges pending outbox messages.
type OutboxRepository interface {
	// ListPending returns up to limit unsent messages, oldest first.
	ListPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkSent(ctx context.Context, id kernel.UUID, at time.Time) error
	IncrementRetries(ctx context.Context, id kernel.UUID) error
}

// EventPublisher delivers an outbox message to one sink.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
