package ports

import (
	"context"
)

// NotificationPublisher delivers status-change notifications to interested
// parties (customers, vendors, downstream systems). Implementations decide
// the channel; the relay job only cares that Publish either delivers or
// errors so the message stays queued.
type NotificationPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
