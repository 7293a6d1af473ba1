package order

import (
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ScopeKind distinguishes the three state machines an order carries.
type ScopeKind int

const (
	// ScopeOrder is the parent order's derived status.
	ScopeOrder ScopeKind = iota + 1

	// ScopeSubOrder is one vendor's sub-order status.
	ScopeSubOrder

	// ScopePayment is the payment/refund sub-state machine.
	ScopePayment
)

// Scope names which state machine a transition or history entry belongs to.
// Sub-order scopes carry the sub-order's identifier.
type Scope struct {
	kind       ScopeKind
	subOrderID kernel.UUID
}

// OrderScope returns the scope of the parent order.
func OrderScope() Scope {
	return Scope{kind: ScopeOrder}
}

// SubOrderScope returns the scope of one sub-order.
func SubOrderScope(subOrderID kernel.UUID) Scope {
	return Scope{kind: ScopeSubOrder, subOrderID: subOrderID}
}

// PaymentScope returns the scope of the payment state machine.
func PaymentScope() Scope {
	return Scope{kind: ScopePayment}
}

// Kind returns which machine the scope refers to.
func (s Scope) Kind() ScopeKind {
	return s.kind
}

// SubOrderID returns the sub-order identifier for sub-order scopes.
// The zero UUID is returned for other kinds.
func (s Scope) SubOrderID() kernel.UUID {
	return s.subOrderID
}

// ScopeFromString parses a scope rendered by String. Used when restoring
// history rows from storage.
func ScopeFromString(s string) (Scope, error) {
	switch {
	case s == "order":
		return OrderScope(), nil
	case s == "payment":
		return PaymentScope(), nil
	case strings.HasPrefix(s, "subOrder:"):
		id, err := kernel.UUIDFromString(strings.TrimPrefix(s, "subOrder:"))
		if err != nil {
			return Scope{}, err
		}
		return SubOrderScope(id), nil
	default:
		return Scope{}, errs.NewValueIsInvalidErrorWithCause("scope",
			fmt.Errorf("unknown scope %q", s))
	}
}

// String renders the scope in its audit form: "order", "subOrder:<id>", or
// "payment". The format is stored in history rows and must stay stable.
func (s Scope) String() string {
	switch s.kind {
	case ScopeOrder:
		return "order"
	case ScopeSubOrder:
		return fmt.Sprintf("subOrder:%s", s.subOrderID)
	case ScopePayment:
		return "payment"
	default:
		return "unknown"
	}
}
