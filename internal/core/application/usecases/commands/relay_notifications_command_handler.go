package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// RelayNotificationsCommandHandler drains the outbox: loads unpublished
// messages, hands them to the publisher, and stamps the delivered ones.
// Delivery is at-least-once; a crash between publish and stamp redelivers
// on the next pass, so consumers must tolerate duplicates.
type RelayNotificationsCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewRelayNotificationsCommandHandler creates a handler for outbox draining.
func NewRelayNotificationsCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle performs one drain pass and returns how many messages were
// delivered. A publish failure stops the pass; already delivered messages
// are still stamped.
func (h *RelayNotificationsCommandHandler) Handle(ctx context.Context, cmd RelayNotificationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	messages, err := outbox.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	delivered := make([]kernel.UUID, 0, len(messages))
	var publishErr error
	for _, message := range messages {
		if publishErr = h.publisher.Publish(ctx, message); publishErr != nil {
			break
		}
		delivered = append(delivered, message.ID)
	}

	if len(delivered) > 0 {
		if err = outbox.MarkPublished(ctx, delivered, time.Now().UTC()); err != nil {
			return 0, err
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return len(delivered), publishErr
}
