package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrMarkOrderRefundedCommandIsNotConstructed = errors.New(
	"MarkOrderRefundedCommand must be created via NewMarkOrderRefundedCommand constructor",
)

// MarkOrderRefundedCommand represents an admin request to move a finished
// or cancelled order to refunded after its payment has been fully returned.
// The operation is all-or-nothing across the sub-orders.
type MarkOrderRefundedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	note    string

	guard guard.ConstructorGuard
}

// NewMarkOrderRefundedCommand creates a command marking an order refunded.
func NewMarkOrderRefundedCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole string,
	actorVendorID *kernel.UUID,
	note string,
) (MarkOrderRefundedCommand, error) {
	markCommand := MarkOrderRefundedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		markCommand.setOrderID(orderID),
		markCommand.setActor(actorID, actorRole, actorVendorID),
	); err != nil {
		return MarkOrderRefundedCommand{}, err
	}

	markCommand.note = note

	return markCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderRefundedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderRefundedCommandIsNotConstructed)
}

// OrderID returns the order to mark refunded.
func (c MarkOrderRefundedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the admin issuing the operation.
func (c MarkOrderRefundedCommand) Actor() order.Actor {
	return c.actor
}

// Note returns the audit note for the refund transitions.
func (c MarkOrderRefundedCommand) Note() string {
	return c.note
}

func (c *MarkOrderRefundedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderRefundedCommand) setActor(id kernel.UUID, role string, vendorID *kernel.UUID) error {
	actor, err := parseActor(id, role, vendorID)
	if err != nil {
		return err
	}

	c.actor = actor
	return nil
}
