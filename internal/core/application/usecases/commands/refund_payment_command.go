package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand represents an admin request to refund part or all of
// an order's payment. The domain enforces the cumulative refund bound and
// derives partially_refunded versus refunded from the running total.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	amount  float64
	reason  string

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a command refunding an order's payment.
// The amount must be positive; the upper bound is checked in the domain
// against the payment's remaining balance.
func NewRefundPaymentCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole string,
	actorVendorID *kernel.UUID,
	amount float64,
	reason string,
) (RefundPaymentCommand, error) {
	refundCommand := RefundPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		refundCommand.setOrderID(orderID),
		refundCommand.setActor(actorID, actorRole, actorVendorID),
		refundCommand.setAmount(amount),
	); err != nil {
		return RefundPaymentCommand{}, err
	}

	refundCommand.reason = reason

	return refundCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

// OrderID returns the order whose payment gets refunded.
func (c RefundPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the admin issuing the refund.
func (c RefundPaymentCommand) Actor() order.Actor {
	return c.actor
}

// Amount returns the refund amount in the payment's currency.
func (c RefundPaymentCommand) Amount() float64 {
	return c.amount
}

// Reason returns the refund reason recorded in history.
func (c RefundPaymentCommand) Reason() string {
	return c.reason
}

func (c *RefundPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RefundPaymentCommand) setActor(id kernel.UUID, role string, vendorID *kernel.UUID) error {
	actor, err := parseActor(id, role, vendorID)
	if err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RefundPaymentCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("refund amount", amount, 0, nil)
	}

	c.amount = amount
	return nil
}
