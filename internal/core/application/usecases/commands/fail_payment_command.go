package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrFailPaymentCommandIsNotConstructed = errors.New(
	"FailPaymentCommand must be created via NewFailPaymentCommand constructor",
)

// FailPaymentCommand represents a request to mark a pending payment as
// failed, typically after the payment provider reports a declined capture.
type FailPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	note    string

	guard guard.ConstructorGuard
}

// NewFailPaymentCommand creates a command failing an order's payment.
func NewFailPaymentCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole string,
	actorVendorID *kernel.UUID,
	note string,
) (FailPaymentCommand, error) {
	failCommand := FailPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		failCommand.setOrderID(orderID),
		failCommand.setActor(actorID, actorRole, actorVendorID),
	); err != nil {
		return FailPaymentCommand{}, err
	}

	failCommand.note = note

	return failCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c FailPaymentCommand) Validate() error {
	return c.guard.Validate(ErrFailPaymentCommandIsNotConstructed)
}

// OrderID returns the order whose payment failed.
func (c FailPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the party reporting the failure.
func (c FailPaymentCommand) Actor() order.Actor {
	return c.actor
}

// Note returns the provider's failure detail recorded in history.
func (c FailPaymentCommand) Note() string {
	return c.note
}

func (c *FailPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FailPaymentCommand) setActor(id kernel.UUID, role string, vendorID *kernel.UUID) error {
	actor, err := parseActor(id, role, vendorID)
	if err != nil {
		return err
	}

	c.actor = actor
	return nil
}
