package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand represents a request to mark an order's payment as
// captured. Restricted to admin and system actors.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command confirming an order's payment.
func NewConfirmPaymentCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole string,
	actorVendorID *kernel.UUID,
) (ConfirmPaymentCommand, error) {
	confirmCommand := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setOrderID(orderID),
		confirmCommand.setActor(actorID, actorRole, actorVendorID),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the order whose payment gets confirmed.
func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the party confirming the payment.
func (c ConfirmPaymentCommand) Actor() order.Actor {
	return c.actor
}

func (c *ConfirmPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setActor(id kernel.UUID, role string, vendorID *kernel.UUID) error {
	actor, err := parseActor(id, role, vendorID)
	if err != nil {
		return err
	}

	c.actor = actor
	return nil
}
