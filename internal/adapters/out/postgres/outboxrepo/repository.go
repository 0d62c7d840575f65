package outboxrepo

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/ports"

	"gorm.io/gorm"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Append stores messages; it runs inside the unit of work's transaction.
func (r *GormOutboxRepository) Append(ctx context.Context, msgs ...ports.OutboxMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	dtos := make([]OutboxMessageDTO, 0, len(msgs))
	for _, msg := range msgs {
		dtos = append(dtos, fromMessage(msg))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormOutboxRepository) ListPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	if err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("seq").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	msgs := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msg, err := toMessage(dto)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, id kernel.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&OutboxMessageDTO{}).
		Where("id = ?", id.Bytes()).
		Update("sent_at", at).Error
}

func (r *GormOutboxRepository) IncrementRetries(ctx context.Context, id kernel.UUID) error {
	return r.db.WithContext(ctx).Model(&OutboxMessageDTO{}).
		Where("id = ?", id.Bytes()).
		Update("retries", gorm.Expr("retries + 1")).Error
}
