package commands

import (
	"context"
	"fmt"

	"manufacturing/internal/core/ports"
	"manufacturing/internal/pkg/clock"
	"manufacturing/internal/pkg/metrics"
)

// Sink is a named destination of outbox messages.
type Sink struct {
	Name      string
	Publisher ports.EventPublisher
}

// RelayOutboxCommandHandler hands pending outbox messages to every sink in
// storage order. A message is marked sent once all sinks accepted it. The
// first failure increments the message's retry counter and ends the batch,
// so later events of the same order are never delivered ahead of it.
// Delivery is at least once: a sink that accepted a message before another
// sink failed receives it again on the next run.
type RelayOutboxCommandHandler struct {
	outbox ports.OutboxRepository
	sinks  []Sink
	clock  clock.Clock
}

func NewRelayOutboxCommandHandler(outbox ports.OutboxRepository, sinks []Sink, clk clock.Clock) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		outbox: outbox,
		sinks:  sinks,
		clock:  clk,
	}
}

func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pending, err := h.outbox.ListPending(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}

	for _, msg := range pending {
		if err = h.deliver(ctx, msg); err != nil {
			if incErr := h.outbox.IncrementRetries(ctx, msg.ID); incErr != nil {
				return fmt.Errorf("%w (retry counter not updated: %w)", err, incErr)
			}
			return err
		}

		if err = h.outbox.MarkSent(ctx, msg.ID, h.clock.Now()); err != nil {
			return err
		}
	}

	return nil
}

func (h RelayOutboxCommandHandler) deliver(ctx context.Context, msg ports.OutboxMessage) error {
	for _, sink := range h.sinks {
		if err := sink.Publisher.Publish(ctx, msg); err != nil {
			metrics.OutboxFailures.WithLabelValues(sink.Name).Inc()
			return fmt.Errorf("publish outbox message %s to %s: %w", msg.ID, sink.Name, err)
		}
		metrics.OutboxPublished.WithLabelValues(sink.Name).Inc()
	}
	return nil
}
