package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the wrap target for every rejected status change.
// Callers classify rejections with errors.Is against this value.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a rejected state change with enough context
// to surface to the requesting actor verbatim. A rejected transition is never
// partially applied.
type InvalidTransitionError struct {
	Scope  Scope
	From   Status
	To     Status
	Reason string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// scope, transition, and human-readable reason.
func NewInvalidTransitionError(scope Scope, from, to Status, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{Scope: scope, From: from, To: to, Reason: reason}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s: %s -> %s (%s)", ErrInvalidTransition, e.Scope, e.From, e.To, e.Reason)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// TransitionRequest carries everything StatusPolicy needs to decide a status
// change: the machine being moved, the requested edge, the requesting actor,
// and the two cross-machine facts the rules depend on (sub-order ownership
// and refund completion).
type TransitionRequest struct {
	// Scope identifies the machine the transition applies to.
	Scope Scope
	// From and To describe the requested edge.
	From Status
	To   Status
	// Actor is the resolved identity requesting the change.
	Actor Actor
	// OwnsOrder is true when a customer actor acts on their own order.
	// Ignored for non-customer actors.
	OwnsOrder bool
	// OwnsSubOrder is true when a vendor actor acts on its own sub-order.
	// Ignored for non-vendor actors and non-sub-order scopes.
	OwnsSubOrder bool
	// PaymentRefunded is true when the payment has been refunded in full.
	// Gates edges into Refunded.
	PaymentRefunded bool
}

// StatusPolicy decides whether a requested order/sub-order transition is
// legal. It is a pure lookup over the adjacency table in status.go plus role
// scoping; it never mutates anything.
//
// Rules enforced on top of the table:
//   - terminal states have no outgoing edges except the refund-gated ones
//   - manual transitions advance one step at a time; the carrier-driven
//     Shipped → Delivered jump arrives under RoleSystem
//   - customers may only act on their own order
//   - customers may only cancel, and only while Pending or Confirmed
//   - vendors may only move their own sub-orders
//   - system actors may only record carrier-driven delivery
//   - Refunded requires an admin (or system) and a fully refunded payment
//
// Example:
//
//	policy := order.NewStatusPolicy()
//	err := policy.Authorize(order.TransitionRequest{
//	    Scope: order.SubOrderScope(subOrderID),
//	    From:  order.Processing,
//	    To:    order.Shipped,
//	    Actor: vendorActor,
//	    OwnsSubOrder: true,
//	})
type StatusPolicy struct{}

// NewStatusPolicy creates a StatusPolicy. The policy is stateless; a single
// instance may be shared freely.
func NewStatusPolicy() StatusPolicy {
	return StatusPolicy{}
}

// Authorize returns nil when the requested transition is legal, or an
// InvalidTransitionError describing the first violated rule.
func (p StatusPolicy) Authorize(req TransitionRequest) error {
	if err := errors.Join(req.From.Validate(), req.To.Validate(), req.Actor.Validate()); err != nil {
		return NewInvalidTransitionError(req.Scope, req.From, req.To, err.Error())
	}

	if req.From == req.To {
		return NewInvalidTransitionError(req.Scope, req.From, req.To, "status is unchanged")
	}

	if !req.From.CanTransitionTo(req.To) {
		if req.From.IsTerminal() {
			return NewInvalidTransitionError(req.Scope, req.From, req.To,
				fmt.Sprintf("%s is terminal", req.From))
		}
		return NewInvalidTransitionError(req.Scope, req.From, req.To, "no such transition")
	}

	if req.To == Refunded {
		if !req.PaymentRefunded {
			return NewInvalidTransitionError(req.Scope, req.From, req.To,
				"payment is not fully refunded")
		}
		if req.Actor.Role() != RoleAdmin && req.Actor.Role() != RoleSystem {
			return NewInvalidTransitionError(req.Scope, req.From, req.To,
				fmt.Sprintf("%s may not mark orders refunded", req.Actor.Role()))
		}
		return nil
	}

	switch req.Actor.Role() {
	case RoleCustomer:
		if !req.OwnsOrder {
			return NewInvalidTransitionError(req.Scope, req.From, req.To,
				"order belongs to another customer")
		}
		if req.To != Cancelled {
			return NewInvalidTransitionError(req.Scope, req.From, req.To,
				"customers may only request cancellation")
		}
		if req.From != Pending && req.From != Confirmed {
			return NewInvalidTransitionError(req.Scope, req.From, req.To,
				fmt.Sprintf("customers may not cancel %s orders", req.From))
		}
	case RoleVendor:
		if req.Scope.Kind() == ScopeSubOrder && !req.OwnsSubOrder {
			return NewInvalidTransitionError(req.Scope, req.From, req.To,
				"sub-order belongs to another vendor")
		}
	case RoleSystem:
		if req.From != Shipped || req.To != Delivered {
			return NewInvalidTransitionError(req.Scope, req.From, req.To,
				"system actors may only record carrier delivery")
		}
	case RoleAdmin:
		// admins may take any edge the table allows
	default:
		return NewInvalidTransitionError(req.Scope, req.From, req.To, "unknown actor role")
	}

	return nil
}
