// Package outboxrepo stores events in the transaction that produced them and
// hands them to the relay afterwards.
package outboxrepo

import (
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/ports"

	"github.com/google/uuid"
)

type OutboxMessageDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq       int64      `gorm:"autoIncrement;uniqueIndex"`
	Topic     string     `gorm:"type:varchar(255);not null"`
	Key       string     `gorm:"type:varchar(255);not null"`
	Payload   []byte     `gorm:"type:jsonb;not null"`
	Retries   int        `gorm:"type:int;not null;default:0"`
	CreatedAt time.Time  `gorm:"not null;index"`
	SentAt    *time.Time `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox"
}

func fromMessage(msg ports.OutboxMessage) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:        msg.ID.Bytes(),
		Topic:     msg.Topic,
		Key:       msg.Key,
		Payload:   msg.Payload,
		Retries:   msg.Retries,
		CreatedAt: msg.CreatedAt,
	}
}

func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:        id,
		Topic:     dto.Topic,
		Key:       dto.Key,
		Payload:   dto.Payload,
		Retries:   dto.Retries,
		CreatedAt: dto.CreatedAt,
	}, nil
}
