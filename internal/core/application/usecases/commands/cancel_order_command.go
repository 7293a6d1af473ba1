package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order. Cancellation
// fans out over the sub-orders and is best effort: sub-orders past the
// cancellable window stay untouched and are reported in the result.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order on behalf of
// the given actor.
func NewCancelOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole string,
	actorVendorID *kernel.UUID,
	reason string,
) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setActor(actorID, actorRole, actorVendorID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	cancelCommand.reason = reason

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the party requesting cancellation.
func (c CancelOrderCommand) Actor() order.Actor {
	return c.actor
}

// Reason returns the cancellation reason recorded in history.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setActor(id kernel.UUID, role string, vendorID *kernel.UUID) error {
	actor, err := parseActor(id, role, vendorID)
	if err != nil {
		return err
	}

	c.actor = actor
	return nil
}
