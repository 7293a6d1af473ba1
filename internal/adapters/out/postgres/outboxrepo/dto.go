// Package outboxrepo persists pending notifications in the same database
// transaction as the aggregate changes that produced them. A cron relay
// drains the table and hands messages to the notification publisher.
package outboxrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO represents one outbox row. PublishedAt stays null until the
// relay delivers the message.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromPort(message ports.OutboxMessage) MessageDTO {
	return MessageDTO{
		ID:          message.ID.Bytes(),
		OrderID:     message.OrderID.Bytes(),
		EventType:   message.EventType,
		Payload:     message.Payload,
		CreatedAt:   message.CreatedAt,
		PublishedAt: message.PublishedAt,
	}
}

func toPort(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		OrderID:     orderID,
		EventType:   dto.EventType,
		Payload:     dto.Payload,
		CreatedAt:   dto.CreatedAt,
		PublishedAt: dto.PublishedAt,
	}, nil
}
