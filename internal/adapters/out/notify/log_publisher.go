// Package notify delivers status-change notifications drained from the
// outbox. The log publisher is the default sink; real channels (email, push,
// vendor webhooks) plug in behind the same port.
package notify

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"
)

// LogPublisher implements ports.NotificationPublisher by writing structured
// log records. Useful in development and as a fallback sink.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher writing to the given logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the notification. It never fails, so messages are always
// marked published.
func (p *LogPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	p.logger.InfoContext(ctx, "notification published",
		"messageId", message.ID.String(),
		"orderId", message.OrderID.String(),
		"eventType", message.EventType,
		"payload", string(message.Payload),
	)
	return nil
}
