package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []Status{
	Pending, Confirmed, Processing, Shipped,
	Delivered, Completed, Cancelled, Refunded,
}

// enumerateTuples calls visit with every tuple of valid statuses of length n.
func enumerateTuples(n int, visit func([]Status)) {
	tuple := make([]Status, n)
	var walk func(pos int)
	walk = func(pos int) {
		if pos == n {
			visit(tuple)
			return
		}
		for _, s := range allStatuses {
			tuple[pos] = s
			walk(pos + 1)
		}
	}
	walk(0)
}

func TestDeriveStatusTotal(t *testing.T) {
	t.Run("every combination derives a valid status", func(t *testing.T) {
		for n := 1; n <= 3; n++ {
			enumerateTuples(n, func(tuple []Status) {
				derived := deriveStatus(tuple)
				require.NoError(t, derived.Validate(), "%v", tuple)
			})
		}
	})

	t.Run("derivation is deterministic", func(t *testing.T) {
		enumerateTuples(3, func(tuple []Status) {
			again := make([]Status, len(tuple))
			copy(again, tuple)
			require.Equal(t, deriveStatus(tuple), deriveStatus(again), "%v", tuple)
		})
	})

	t.Run("derivation ignores sub-order ordering", func(t *testing.T) {
		enumerateTuples(3, func(tuple []Status) {
			reversed := []Status{tuple[2], tuple[1], tuple[0]}
			require.Equal(t, deriveStatus(tuple), deriveStatus(reversed), "%v", tuple)
		})
	})

	t.Run("a lone sub-order sets the order status", func(t *testing.T) {
		for _, s := range allStatuses {
			assert.Equal(t, s, deriveStatus([]Status{s}), s)
		}
	})

	t.Run("no sub-orders derives pending", func(t *testing.T) {
		assert.Equal(t, Pending, deriveStatus(nil))
	})
}

func TestDeriveStatusPrecedence(t *testing.T) {
	cases := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"all cancelled", []Status{Cancelled, Cancelled}, Cancelled},
		{"refunded beats cancelled", []Status{Refunded, Cancelled}, Refunded},
		{"cancelled never blocks a finished order", []Status{Cancelled, Delivered}, Completed},
		{"cancelled alongside completed and refunded", []Status{Cancelled, Completed, Refunded}, Completed},
		{"refunded counts as completed", []Status{Completed, Refunded}, Completed},
		{"delivered awaits completion", []Status{Delivered, Completed}, Delivered},
		{"least advanced active vendor wins", []Status{Shipped, Processing}, Processing},
		{"cancelled excluded from the progress scan", []Status{Cancelled, Shipped}, Shipped},
		{"confirmed holds back fulfillment progress", []Status{Confirmed, Processing}, Confirmed},
		{"pending holds back everything", []Status{Pending, Shipped}, Pending},
		{"all confirmed", []Status{Confirmed, Confirmed, Confirmed}, Confirmed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, deriveStatus(tc.statuses))
		})
	}
}
