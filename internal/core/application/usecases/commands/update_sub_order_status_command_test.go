package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateSubOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	subOrderID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	vendorID := kernel.NewUUID()

	cmd, err := commands.NewUpdateSubOrderStatusCommand(
		orderID, subOrderID, "confirmed", actorID, "vendor", &vendorID, "in stock",
	)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, subOrderID, cmd.SubOrderID())
	assert.Equal(t, order.Confirmed, cmd.Status())
	assert.Equal(t, actorID, cmd.Actor().ID())
	assert.Equal(t, order.RoleVendor, cmd.Actor().Role())
	assert.Equal(t, "in stock", cmd.Note())
	assert.NoError(t, cmd.Validate())
}

func TestNewUpdateSubOrderStatusCommand_UnknownStatus(t *testing.T) {
	vendorID := kernel.NewUUID()
	_, err := commands.NewUpdateSubOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), "teleported", kernel.NewUUID(), "vendor", &vendorID, "",
	)
	require.Error(t, err)
}

func TestNewUpdateSubOrderStatusCommand_UnknownRole(t *testing.T) {
	_, err := commands.NewUpdateSubOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), "confirmed", kernel.NewUUID(), "auditor", nil, "",
	)
	require.Error(t, err)
}

func TestNewUpdateSubOrderStatusCommand_VendorWithoutVendorID(t *testing.T) {
	_, err := commands.NewUpdateSubOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), "confirmed", kernel.NewUUID(), "vendor", nil, "",
	)
	require.Error(t, err)
}

func TestNewUpdateSubOrderStatusCommand_InvalidSubOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewUpdateSubOrderStatusCommand(
		kernel.NewUUID(), invalidID, "confirmed", kernel.NewUUID(), "admin", nil, "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
