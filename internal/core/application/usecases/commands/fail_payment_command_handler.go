package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// FailPaymentCommandHandler marks a pending payment as failed.
type FailPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFailPaymentCommandHandler creates a handler for payment failures.
func NewFailPaymentCommandHandler(uowFactory OrderUoWFactory) FailPaymentCommandHandler {
	return FailPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment failure command.
func (h *FailPaymentCommandHandler) Handle(ctx context.Context, cmd FailPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.FailPayment(cmd.Actor(), cmd.Note(), time.Now().UTC())
	})
}
