package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrRecordTrackingEventCommandIsNotConstructed = errors.New(
	"RecordTrackingEventCommand must be created via NewRecordTrackingEventCommand constructor",
)

// RecordTrackingEventCommand represents one carrier webhook delivery for a
// sub-order's shipment. The first event for a sub-order attaches the
// tracking timeline; later events append to it. Out-of-order and duplicate
// events are kept in a side log without affecting status.
//
// Example:
//
//	cmd, err := NewRecordTrackingEventCommand(
//	    orderID, subOrderID,
//	    "1Z999AA10123456784", "ups", "https://tracking.example/1Z999AA10123456784",
//	    "delivered", "left at reception", "Austin, TX", eventTime,
//	)
type RecordTrackingEventCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	subOrderID     kernel.UUID
	trackingNumber string
	carrier        order.Carrier
	trackingURL    string
	status         order.TrackingStatus
	description    string
	location       string
	timestamp      time.Time

	guard guard.ConstructorGuard
}

// NewRecordTrackingEventCommand creates a command recording one carrier
// event. Validates identifiers and parses the carrier and event status.
func NewRecordTrackingEventCommand(
	orderID kernel.UUID,
	subOrderID kernel.UUID,
	trackingNumber string,
	carrier string,
	trackingURL string,
	status string,
	description string,
	location string,
	timestamp time.Time,
) (RecordTrackingEventCommand, error) {
	trackingCommand := RecordTrackingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		trackingCommand.setOrderID(orderID),
		trackingCommand.setSubOrderID(subOrderID),
		trackingCommand.setCarrier(carrier),
		trackingCommand.setStatus(status),
	); err != nil {
		return RecordTrackingEventCommand{}, err
	}

	trackingCommand.trackingNumber = trackingNumber
	trackingCommand.trackingURL = trackingURL
	trackingCommand.description = description
	trackingCommand.location = location
	trackingCommand.timestamp = timestamp

	return trackingCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordTrackingEventCommandIsNotConstructed if validation fails.
func (c RecordTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordTrackingEventCommandIsNotConstructed)
}

// OrderID returns the parent order's identifier.
func (c RecordTrackingEventCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SubOrderID returns the sub-order the shipment belongs to.
func (c RecordTrackingEventCommand) SubOrderID() kernel.UUID {
	return c.subOrderID
}

// TrackingNumber returns the carrier's tracking number.
func (c RecordTrackingEventCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Carrier returns the parsed carrier.
func (c RecordTrackingEventCommand) Carrier() order.Carrier {
	return c.carrier
}

// TrackingURL returns the customer-facing tracking link, possibly empty.
func (c RecordTrackingEventCommand) TrackingURL() string {
	return c.trackingURL
}

// Status returns the parsed tracking event status.
func (c RecordTrackingEventCommand) Status() order.TrackingStatus {
	return c.status
}

// Description returns the carrier's event description.
func (c RecordTrackingEventCommand) Description() string {
	return c.description
}

// Location returns the carrier-reported location, possibly empty.
func (c RecordTrackingEventCommand) Location() string {
	return c.location
}

// Timestamp returns when the carrier says the event happened.
func (c RecordTrackingEventCommand) Timestamp() time.Time {
	return c.timestamp
}

func (c *RecordTrackingEventCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordTrackingEventCommand) setSubOrderID(subOrderID kernel.UUID) error {
	if err := subOrderID.Validate(); err != nil {
		return err
	}

	c.subOrderID = subOrderID
	return nil
}

func (c *RecordTrackingEventCommand) setCarrier(carrier string) error {
	parsed, err := order.CarrierFromString(carrier)
	if err != nil {
		return err
	}

	c.carrier = parsed
	return nil
}

func (c *RecordTrackingEventCommand) setStatus(status string) error {
	parsed, err := order.TrackingStatusFromString(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
