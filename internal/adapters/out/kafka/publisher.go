// Package kafka publishes outbox messages to Kafka topics.
package kafka

import (
	"context"
	"fmt"
	"time"

	"manufacturing/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const (
	messageIDHeader = "message-id"
	writeTimeout    = 10 * time.Second
)

var _ ports.EventPublisher = &Publisher{}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes each outbox message to the message's topic, keyed by the
// order id so all events of one order land on one partition in order.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(brokers ...string) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           writeTimeout,
	})
}

func newPublisher(w messageWriter) *Publisher {
	return &Publisher{writer: w}
}

func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: msg.Topic,
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Headers: []kafka.Header{
			{Key: messageIDHeader, Value: []byte(msg.ID.String())},
		},
		Time: msg.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("kafka write to %s: %w", msg.Topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
