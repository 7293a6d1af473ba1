package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateSubOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateSubOrderStatusCommand must be created via NewUpdateSubOrderStatusCommand constructor",
)

// UpdateSubOrderStatusCommand represents a request to move one vendor's
// sub-order to a new status on behalf of an actor. Whether the transition is
// allowed is decided by the domain's status policy, not here.
//
// Example:
//
//	cmd, err := NewUpdateSubOrderStatusCommand(
//	    orderID, subOrderID, "confirmed",
//	    vendorUserID, "vendor", &vendorID, "in stock",
//	)
//	if err != nil {
//	    return err
//	}
//	handler := NewUpdateSubOrderStatusCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type UpdateSubOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	subOrderID kernel.UUID
	status     order.Status
	actor      order.Actor
	note       string

	guard guard.ConstructorGuard
}

// NewUpdateSubOrderStatusCommand creates a command to update a sub-order's
// status. Validates identifiers, parses the target status, and builds the
// acting party from its raw fields.
func NewUpdateSubOrderStatusCommand(
	orderID kernel.UUID,
	subOrderID kernel.UUID,
	status string,
	actorID kernel.UUID,
	actorRole string,
	actorVendorID *kernel.UUID,
	note string,
) (UpdateSubOrderStatusCommand, error) {
	updateCommand := UpdateSubOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setSubOrderID(subOrderID),
		updateCommand.setStatus(status),
		updateCommand.setActor(actorID, actorRole, actorVendorID),
	); err != nil {
		return UpdateSubOrderStatusCommand{}, err
	}

	updateCommand.note = note

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateSubOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateSubOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSubOrderStatusCommandIsNotConstructed)
}

// OrderID returns the parent order's identifier.
func (c UpdateSubOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SubOrderID returns the sub-order to transition.
func (c UpdateSubOrderStatusCommand) SubOrderID() kernel.UUID {
	return c.subOrderID
}

// Status returns the parsed target status.
func (c UpdateSubOrderStatusCommand) Status() order.Status {
	return c.status
}

// Actor returns the party requesting the transition.
func (c UpdateSubOrderStatusCommand) Actor() order.Actor {
	return c.actor
}

// Note returns the optional audit note.
func (c UpdateSubOrderStatusCommand) Note() string {
	return c.note
}

func (c *UpdateSubOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateSubOrderStatusCommand) setSubOrderID(subOrderID kernel.UUID) error {
	if err := subOrderID.Validate(); err != nil {
		return err
	}

	c.subOrderID = subOrderID
	return nil
}

func (c *UpdateSubOrderStatusCommand) setStatus(status string) error {
	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}

func (c *UpdateSubOrderStatusCommand) setActor(id kernel.UUID, role string, vendorID *kernel.UUID) error {
	actor, err := parseActor(id, role, vendorID)
	if err != nil {
		return err
	}

	c.actor = actor
	return nil
}
