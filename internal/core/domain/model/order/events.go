package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// StatusChangedEvent is emitted for every accepted transition in any of the
// order's state machines. The aggregate accumulates events; the application
// layer drains them into the notification outbox within the same
// transaction that persists the change. From and to carry wire names so the
// payment machine shares the event shape with the order machines; from is
// empty for creation events.
type StatusChangedEvent struct {
	OrderID    kernel.UUID
	Scope      Scope
	From       string
	To         string
	OccurredAt time.Time
}
