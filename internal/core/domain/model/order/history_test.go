package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	t.Run("append assigns increasing sequence numbers", func(t *testing.T) {
		history := order.NewHistory()
		actor := newActor(t, order.RoleAdmin)
		now := time.Now()

		first := history.Append(order.OrderScope(), "", "pending", actor, "order placed", now)
		second := history.Append(order.PaymentScope(), "pending", "completed", actor, "", now.Add(time.Minute))

		assert.Equal(t, 1, first.Seq())
		assert.Equal(t, 2, second.Seq())
		assert.Equal(t, 2, history.Len())

		entries := history.Entries()
		require.Len(t, entries, 2)
		assert.Empty(t, entries[0].From())
		assert.Equal(t, "pending", entries[0].To())
		assert.Equal(t, "order placed", entries[0].Note())
		assert.Equal(t, order.ScopePayment, entries[1].Scope().Kind())
	})

	t.Run("entries returns a copy", func(t *testing.T) {
		history := order.NewHistory()
		history.Append(order.OrderScope(), "", "pending", newActor(t, order.RoleAdmin), "", time.Now())

		entries := history.Entries()
		entries[0] = order.HistoryEntry{}

		assert.Equal(t, "pending", history.Entries()[0].To())
	})

	t.Run("restore continues the sequence", func(t *testing.T) {
		restored := order.RestoreHistory([]order.HistoryEntry{
			order.RestoreHistoryEntry(
				1, time.Now(), order.OrderScope(), "", "pending",
				kernel.NewUUID().String(), order.RoleCustomer, "order placed",
			),
		})

		entry := restored.Append(order.OrderScope(), "pending", "confirmed", newActor(t, order.RoleAdmin), "", time.Now())

		assert.Equal(t, 2, entry.Seq())
		assert.Equal(t, 2, restored.Len())
	})
}

func TestScopeRoundTrip(t *testing.T) {
	t.Run("order and payment scopes", func(t *testing.T) {
		for _, scope := range []order.Scope{order.OrderScope(), order.PaymentScope()} {
			parsed, err := order.ScopeFromString(scope.String())

			require.NoError(t, err)
			assert.Equal(t, scope.Kind(), parsed.Kind())
		}
	})

	t.Run("sub-order scope carries its identifier", func(t *testing.T) {
		subOrderID := kernel.NewUUID()
		scope := order.SubOrderScope(subOrderID)

		parsed, err := order.ScopeFromString(scope.String())

		require.NoError(t, err)
		assert.Equal(t, order.ScopeSubOrder, parsed.Kind())
		assert.True(t, parsed.SubOrderID().IsEqual(subOrderID))
	})

	t.Run("unknown scope strings fail", func(t *testing.T) {
		_, err := order.ScopeFromString("shipment:abc")

		require.Error(t, err)
	})
}
