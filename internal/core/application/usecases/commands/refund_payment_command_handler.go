package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// RefundPaymentCommandHandler records refunds against an order's payment.
// Refunds never touch order or sub-order status; marking the order itself
// refunded is the separate MarkOrderRefunded command.
type RefundPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRefundPaymentCommandHandler creates a handler for payment refunds.
func NewRefundPaymentCommandHandler(uowFactory OrderUoWFactory) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refund command.
func (h *RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.RefundPayment(cmd.Amount(), cmd.Reason(), cmd.Actor(), time.Now().UTC())
	})
}
