package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// MarkOrderRefundedCommandHandler moves an order to refunded once the
// payment is fully returned. The aggregate pre-validates every sub-order
// before applying anything, so partial application cannot happen.
type MarkOrderRefundedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderRefundedCommandHandler creates a handler for marking orders refunded.
func NewMarkOrderRefundedCommandHandler(uowFactory OrderUoWFactory) MarkOrderRefundedCommandHandler {
	return MarkOrderRefundedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-refunded command.
func (h *MarkOrderRefundedCommandHandler) Handle(ctx context.Context, cmd MarkOrderRefundedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.MarkRefunded(cmd.Actor(), cmd.Note(), time.Now().UTC())
	})
}
