package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// RecordTrackingEventCommandHandler ingests carrier webhook events. An
// accepted delivered event moves the shipment's sub-order from shipped to
// delivered under the system actor; stale and duplicate events are archived
// without status effect and reported as not accepted.
type RecordTrackingEventCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordTrackingEventCommandHandler creates a handler for carrier events.
// Requires an OrderUoWFactory for transactional persistence.
func NewRecordTrackingEventCommandHandler(uowFactory OrderUoWFactory) RecordTrackingEventCommandHandler {
	return RecordTrackingEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one carrier event. Returns whether the event advanced
// the timeline; false means it went to the stale side log.
func (h *RecordTrackingEventCommandHandler) Handle(ctx context.Context, cmd RecordTrackingEventCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	event, err := order.NewTrackingEvent(cmd.Status(), cmd.Description(), cmd.Location(), cmd.Timestamp())
	if err != nil {
		return false, err
	}

	var accepted bool
	err = mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		var recordErr error
		accepted, recordErr = aggregate.RecordTrackingEvent(
			cmd.SubOrderID(),
			cmd.TrackingNumber(),
			cmd.Carrier(),
			cmd.TrackingURL(),
			event,
			time.Now().UTC(),
		)
		return recordErr
	})
	if err != nil {
		return false, err
	}

	return accepted, nil
}
