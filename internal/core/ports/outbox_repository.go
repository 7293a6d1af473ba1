package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// OutboxMessage is one pending notification persisted in the same
// transaction as the aggregate change that produced it. A relay job picks
// unpublished messages up later and hands them to the NotificationPublisher.
type OutboxMessage struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// OutboxRepository stores and drains pending notifications.
type OutboxRepository interface {
	// Add persists new outbox messages within the ambient transaction.
	Add(ctx context.Context, messages []OutboxMessage) error

	// GetUnpublished returns up to limit unpublished messages, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished stamps the messages as delivered.
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}
