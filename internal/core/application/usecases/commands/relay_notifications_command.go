package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRelayNotificationsCommandIsNotConstructed = errors.New(
	"RelayNotificationsCommand must be created via NewRelayNotificationsCommand constructor",
)

// RelayNotificationsCommand asks for one drain pass over the outbox:
// deliver up to BatchSize unpublished notifications and stamp the delivered
// ones. The relay job issues this command on a schedule.
type RelayNotificationsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

// NewRelayNotificationsCommand creates a relay command with the given batch
// size.
func NewRelayNotificationsCommand(batchSize int) (RelayNotificationsCommand, error) {
	if batchSize <= 0 {
		return RelayNotificationsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, nil)
	}

	return RelayNotificationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RelayNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRelayNotificationsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of messages to deliver in one pass.
func (c RelayNotificationsCommand) BatchSize() int {
	return c.batchSize
}
