package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// UpdateSubOrderStatusCommandHandler applies actor-requested sub-order
// transitions. The aggregate enforces the transition graph and role policy;
// the handler supplies transaction management and optimistic retry.
//
// Example:
//
//	handler := NewUpdateSubOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var transitionErr *order.InvalidTransitionError
//	    if errors.As(err, &transitionErr) {
//	        // 409 for the API, message is actor-safe
//	    }
//	}
type UpdateSubOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateSubOrderStatusCommandHandler creates a handler for sub-order
// status updates. Requires an OrderUoWFactory for transactional persistence.
func NewUpdateSubOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateSubOrderStatusCommandHandler {
	return UpdateSubOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command. Loads the aggregate, applies
// the transition, and persists the result with its notifications; losing the
// version race reloads and reapplies up to the retry budget.
func (h *UpdateSubOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateSubOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.UpdateSubOrderStatus(
			cmd.SubOrderID(),
			cmd.Status(),
			cmd.Actor(),
			cmd.Note(),
			time.Now().UTC(),
		)
	})
}
