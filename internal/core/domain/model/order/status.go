package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order or a sub-order. Both
// scopes share one vocabulary: the parent order's state is an aggregation of
// its sub-orders, not a separately driven machine.
//
// Happy path:
//
//	Pending → Confirmed → Processing → Shipped → Delivered → Completed
//
// Cancelled is reachable from {Pending, Confirmed, Processing}. Refunded is
// reachable from {Completed, Cancelled} once the payment is fully refunded.
// Completed, Cancelled, and Refunded are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order and sub-order at checkout.
	Pending

	// Confirmed indicates the vendor has acknowledged the sub-order.
	Confirmed

	// Processing indicates the vendor is preparing the shipment.
	Processing

	// Shipped indicates the shipment has been handed to a carrier.
	Shipped

	// Delivered indicates the carrier reported delivery to the customer.
	Delivered

	// Completed indicates the order is finished. Terminal.
	Completed

	// Cancelled indicates the order was called off before shipping. Terminal.
	Cancelled

	// Refunded indicates a finished or cancelled order whose payment was
	// fully returned. Terminal.
	Refunded
)

// getStatusStrings returns string representations for all Status values,
// including Unknown, to support display of invalid data.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Completed:  "completed",
		Cancelled:  "cancelled",
		Refunded:   "refunded",
	}
}

// getValidStatusStrings returns only valid Status values to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Confirmed:  "confirmed",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Completed:  "completed",
		Cancelled:  "cancelled",
		Refunded:   "refunded",
	}
}

// statusTransitions is the fixed adjacency table for the order/sub-order
// state machine. Absence of an edge means the transition is never legal,
// regardless of actor. StatusPolicy layers role scoping on top.
var statusTransitions = map[Status][]Status{
	Pending:    {Confirmed, Cancelled},
	Confirmed:  {Processing, Cancelled},
	Processing: {Shipped, Cancelled},
	Shipped:    {Delivered},
	Delivered:  {Completed},
	Completed:  {Refunded},
	Cancelled:  {Refunded},
}

// StatusFromString parses a wire-format status name ("pending", "shipped", ...).
// Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status. Implements
// fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions
// besides the refund-gated edge out of Completed and Cancelled.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Refunded
}

// CanTransitionTo reports whether the adjacency table contains an edge from
// s to target. Role and payment gating are the policy's concern, not this
// table's.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsCancellable reports whether the status is within the cancellation window.
func (s Status) IsCancellable() bool {
	return s.CanTransitionTo(Cancelled)
}
