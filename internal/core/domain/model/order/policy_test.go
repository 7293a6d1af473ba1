package order_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVendorActor(t *testing.T, vendorID kernel.UUID) order.Actor {
	t.Helper()
	actor, err := order.NewActor(kernel.NewUUID(), order.RoleVendor, &vendorID)
	require.NoError(t, err)
	return actor
}

func newActor(t *testing.T, role order.ActorRole) order.Actor {
	t.Helper()
	actor, err := order.NewActor(kernel.NewUUID(), role, nil)
	require.NoError(t, err)
	return actor
}

func TestStatusPolicyAuthorize(t *testing.T) {
	policy := order.NewStatusPolicy()
	vendorID := kernel.NewUUID()
	subScope := order.SubOrderScope(kernel.NewUUID())

	t.Run("vendor may advance own sub-order", func(t *testing.T) {
		err := policy.Authorize(order.TransitionRequest{
			Scope:        subScope,
			From:         order.Pending,
			To:           order.Confirmed,
			Actor:        newVendorActor(t, vendorID),
			OwnsSubOrder: true,
		})

		assert.NoError(t, err)
	})

	t.Run("vendor may not touch another vendor's sub-order", func(t *testing.T) {
		err := policy.Authorize(order.TransitionRequest{
			Scope:        subScope,
			From:         order.Pending,
			To:           order.Confirmed,
			Actor:        newVendorActor(t, vendorID),
			OwnsSubOrder: false,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "another vendor")
	})

	t.Run("customer may cancel pending and confirmed", func(t *testing.T) {
		customer := newActor(t, order.RoleCustomer)

		for _, from := range []order.Status{order.Pending, order.Confirmed} {
			err := policy.Authorize(order.TransitionRequest{
				Scope:     subScope,
				From:      from,
				To:        order.Cancelled,
				Actor:     customer,
				OwnsOrder: true,
			})
			assert.NoError(t, err, from)
		}
	})

	t.Run("customer may not touch another customer's order", func(t *testing.T) {
		err := policy.Authorize(order.TransitionRequest{
			Scope:     subScope,
			From:      order.Pending,
			To:        order.Cancelled,
			Actor:     newActor(t, order.RoleCustomer),
			OwnsOrder: false,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "another customer")
	})

	t.Run("customer may not cancel once processing", func(t *testing.T) {
		err := policy.Authorize(order.TransitionRequest{
			Scope:     subScope,
			From:      order.Processing,
			To:        order.Cancelled,
			Actor:     newActor(t, order.RoleCustomer),
			OwnsOrder: true,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "may not cancel processing")
	})

	t.Run("customer may not advance statuses", func(t *testing.T) {
		err := policy.Authorize(order.TransitionRequest{
			Scope:     subScope,
			From:      order.Pending,
			To:        order.Confirmed,
			Actor:     newActor(t, order.RoleCustomer),
			OwnsOrder: true,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "only request cancellation")
	})

	t.Run("system may record carrier delivery only", func(t *testing.T) {
		system := order.SystemActor()

		err := policy.Authorize(order.TransitionRequest{
			Scope: subScope,
			From:  order.Shipped,
			To:    order.Delivered,
			Actor: system,
		})
		assert.NoError(t, err)

		err = policy.Authorize(order.TransitionRequest{
			Scope: subScope,
			From:  order.Pending,
			To:    order.Confirmed,
			Actor: system,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "carrier delivery")
	})

	t.Run("admin may take any table edge", func(t *testing.T) {
		admin := newActor(t, order.RoleAdmin)

		for _, edge := range []struct{ from, to order.Status }{
			{order.Pending, order.Confirmed},
			{order.Processing, order.Shipped},
			{order.Shipped, order.Delivered},
			{order.Delivered, order.Completed},
			{order.Processing, order.Cancelled},
		} {
			err := policy.Authorize(order.TransitionRequest{
				Scope: subScope,
				From:  edge.from,
				To:    edge.to,
				Actor: admin,
			})
			assert.NoError(t, err, "%s -> %s", edge.from, edge.to)
		}
	})

	t.Run("terminal states reject further changes", func(t *testing.T) {
		err := policy.Authorize(order.TransitionRequest{
			Scope: subScope,
			From:  order.Completed,
			To:    order.Cancelled,
			Actor: newActor(t, order.RoleAdmin),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "completed is terminal")
	})

	t.Run("no-op transitions are rejected", func(t *testing.T) {
		err := policy.Authorize(order.TransitionRequest{
			Scope: subScope,
			From:  order.Confirmed,
			To:    order.Confirmed,
			Actor: newActor(t, order.RoleAdmin),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unchanged")
	})

	t.Run("refunded requires full refund and admin", func(t *testing.T) {
		admin := newActor(t, order.RoleAdmin)

		err := policy.Authorize(order.TransitionRequest{
			Scope:           subScope,
			From:            order.Completed,
			To:              order.Refunded,
			Actor:           admin,
			PaymentRefunded: false,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not fully refunded")

		err = policy.Authorize(order.TransitionRequest{
			Scope:           subScope,
			From:            order.Completed,
			To:              order.Refunded,
			Actor:           newActor(t, order.RoleCustomer),
			PaymentRefunded: true,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "may not mark orders refunded")

		err = policy.Authorize(order.TransitionRequest{
			Scope:           subScope,
			From:            order.Cancelled,
			To:              order.Refunded,
			Actor:           admin,
			PaymentRefunded: true,
		})
		assert.NoError(t, err)
	})

	t.Run("invalid statuses are rejected before role checks", func(t *testing.T) {
		err := policy.Authorize(order.TransitionRequest{
			Scope: subScope,
			From:  order.Unknown,
			To:    order.Confirmed,
			Actor: newActor(t, order.RoleAdmin),
		})

		require.Error(t, err)

		var transitionErr *order.InvalidTransitionError
		assert.True(t, errors.As(err, &transitionErr))
	})
}
