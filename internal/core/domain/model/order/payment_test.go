package order_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T, amount float64) *order.Payment {
	t.Helper()

	money, err := kernel.NewMoney(amount, "USD")
	require.NoError(t, err)
	payment, err := order.NewPayment(order.PaymentMethodCard, money)
	require.NoError(t, err)
	return payment
}

func TestNewPayment(t *testing.T) {
	t.Run("should create a pending payment", func(t *testing.T) {
		payment := newTestPayment(t, 150)

		assert.Equal(t, order.PaymentPending, payment.Status())
		assert.Equal(t, order.PaymentMethodCard, payment.Method())
		assert.InDelta(t, 150, payment.Amount().Amount(), 0.001)
		assert.Zero(t, payment.RefundedTotal())
		assert.False(t, payment.IsFullyRefunded())
	})

	t.Run("should fail with an invalid method", func(t *testing.T) {
		money, err := kernel.NewMoney(150, "USD")
		require.NoError(t, err)

		_, err = order.NewPayment(order.PaymentMethodUnknown, money)

		require.Error(t, err)
	})
}

func TestPaymentConfirmAndFail(t *testing.T) {
	t.Run("confirm captures a pending payment", func(t *testing.T) {
		payment := newTestPayment(t, 150)

		require.NoError(t, payment.Confirm())
		assert.Equal(t, order.PaymentCompleted, payment.Status())
	})

	t.Run("confirm rejects a captured payment", func(t *testing.T) {
		payment := newTestPayment(t, 150)
		require.NoError(t, payment.Confirm())

		err := payment.Confirm()

		require.Error(t, err)

		var transitionErr *order.PaymentTransitionError
		require.True(t, errors.As(err, &transitionErr))
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("fail rejects anything but pending", func(t *testing.T) {
		payment := newTestPayment(t, 150)

		require.NoError(t, payment.Fail())
		assert.Equal(t, order.PaymentFailed, payment.Status())

		assert.Error(t, payment.Fail())
		assert.Error(t, payment.Confirm())
	})
}

func TestPaymentRefund(t *testing.T) {
	now := time.Now()

	t.Run("partial refund keeps the payment partially refunded", func(t *testing.T) {
		payment := newTestPayment(t, 150)
		require.NoError(t, payment.Confirm())

		require.NoError(t, payment.Refund(50, "damaged item", now))

		assert.Equal(t, order.PaymentPartiallyRefunded, payment.Status())
		assert.InDelta(t, 50, payment.RefundedTotal(), 0.001)
		assert.False(t, payment.IsFullyRefunded())
		require.Len(t, payment.Refunds(), 1)
		assert.Equal(t, "damaged item", payment.Refunds()[0].Reason())
	})

	t.Run("refunds accumulate to fully refunded", func(t *testing.T) {
		payment := newTestPayment(t, 150)
		require.NoError(t, payment.Confirm())

		require.NoError(t, payment.Refund(50, "one", now))
		require.NoError(t, payment.Refund(100, "two", now))

		assert.Equal(t, order.PaymentRefunded, payment.Status())
		assert.True(t, payment.IsFullyRefunded())
	})

	t.Run("rejects refunds past the payment amount", func(t *testing.T) {
		payment := newTestPayment(t, 150)
		require.NoError(t, payment.Confirm())
		require.NoError(t, payment.Refund(100, "one", now))

		err := payment.Refund(51, "too much", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrRefundExceedsAmount)

		var exceeds *order.RefundExceedsAmountError
		require.True(t, errors.As(err, &exceeds))
		assert.InDelta(t, 51, exceeds.Requested, 0.001)
		assert.InDelta(t, 100, exceeds.AlreadyRefunded, 0.001)

		// payment left unchanged
		assert.Equal(t, order.PaymentPartiallyRefunded, payment.Status())
		assert.InDelta(t, 100, payment.RefundedTotal(), 0.001)
	})

	t.Run("rejects zero and negative amounts", func(t *testing.T) {
		payment := newTestPayment(t, 150)
		require.NoError(t, payment.Confirm())

		assert.Error(t, payment.Refund(0, "zero", now))
		assert.Error(t, payment.Refund(-10, "negative", now))
	})

	t.Run("rejects refunds against uncaptured payments", func(t *testing.T) {
		payment := newTestPayment(t, 150)

		err := payment.Refund(50, "not captured", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("tolerates float drift at the boundary", func(t *testing.T) {
		payment := newTestPayment(t, 0.3)
		require.NoError(t, payment.Confirm())

		require.NoError(t, payment.Refund(0.1, "", now))
		require.NoError(t, payment.Refund(0.1, "", now))
		require.NoError(t, payment.Refund(0.1, "", now))

		assert.Equal(t, order.PaymentRefunded, payment.Status())
		assert.True(t, payment.IsFullyRefunded())
	})
}

func TestPaymentMethodFromString(t *testing.T) {
	t.Run("should parse known methods", func(t *testing.T) {
		method, err := order.PaymentMethodFromString("card")

		require.NoError(t, err)
		assert.Equal(t, order.PaymentMethodCard, method)
	})

	t.Run("should fail for unknown methods", func(t *testing.T) {
		_, err := order.PaymentMethodFromString("barter")

		require.Error(t, err)
	})
}

func TestRestorePayment(t *testing.T) {
	t.Run("restores status and refund trail", func(t *testing.T) {
		money, err := kernel.NewMoney(150, "USD")
		require.NoError(t, err)

		refund := order.RestoreRefund(50, "damaged item", time.Now())
		payment, err := order.RestorePayment(
			order.PaymentMethodCard, money, order.PaymentPartiallyRefunded, []order.Refund{refund},
		)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentPartiallyRefunded, payment.Status())
		assert.InDelta(t, 50, payment.RefundedTotal(), 0.001)
	})
}
