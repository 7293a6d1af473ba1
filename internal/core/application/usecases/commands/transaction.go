package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// maxUpdateAttempts bounds optimistic-concurrency retries. Each attempt
// reloads the aggregate in a fresh transaction and reapplies the mutation.
const maxUpdateAttempts = 3

// ErrConcurrentModification is returned when an order update kept losing the
// optimistic-concurrency race after maxUpdateAttempts attempts.
var ErrConcurrentModification = errors.New("order was modified concurrently, retries exhausted")

// statusChangedPayload is the notification body written to the outbox for
// every accepted transition.
type statusChangedPayload struct {
	OrderID    string    `json:"orderId"`
	Scope      string    `json:"scope"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurredAt"`
}

// mutateOrder loads the aggregate, applies the mutation, and persists the
// result together with the outbox messages for the transitions the mutation
// produced. Version conflicts restart the whole cycle in a new transaction
// so the mutation reapplies against fresh state.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order) error,
) error {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := mutateOrderOnce(ctx, uowFactory, orderID, mutate)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ports.ErrVersionConflict) {
			return err
		}
	}

	return ErrConcurrentModification
}

func mutateOrderOnce(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = mutate(aggregate); err != nil {
		return err
	}

	if err = enqueueNotifications(ctx, uow.OutboxRepository(), aggregate); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// enqueueNotifications drains the aggregate's pending events into the outbox.
func enqueueNotifications(ctx context.Context, outbox ports.OutboxRepository, aggregate *order.Order) error {
	events := aggregate.PendingEvents()
	if len(events) == 0 {
		return nil
	}

	messages := make([]ports.OutboxMessage, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(statusChangedPayload{
			OrderID:    event.OrderID.String(),
			Scope:      event.Scope.String(),
			From:       event.From,
			To:         event.To,
			OccurredAt: event.OccurredAt,
		})
		if err != nil {
			return err
		}

		messages = append(messages, ports.OutboxMessage{
			ID:        kernel.NewUUID(),
			OrderID:   event.OrderID,
			EventType: eventType(event.Scope),
			Payload:   payload,
			CreatedAt: event.OccurredAt,
		})
	}

	if err := outbox.Add(ctx, messages); err != nil {
		return err
	}

	aggregate.ClearPendingEvents()
	return nil
}

func eventType(scope order.Scope) string {
	switch scope.Kind() {
	case order.ScopeSubOrder:
		return "suborder.status_changed"
	case order.ScopePayment:
		return "payment.status_changed"
	default:
		return "order.status_changed"
	}
}
