package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles best-effort order cancellation. Returns
// one result per sub-order so the caller can tell the customer which
// shipments stopped and which were already past the cancellable window.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command. Repeating the command on an already
// cancelled order is a no-op yielding the same per-sub-order results.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) ([]order.CancelResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var results []order.CancelResult
	err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		var cancelErr error
		results, cancelErr = aggregate.Cancel(cmd.Actor(), cmd.Reason(), time.Now().UTC())
		return cancelErr
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}
