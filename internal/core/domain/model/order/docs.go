// Package order implements the multi-vendor order aggregate and its
// sub-state machines.
//
// The aggregate root is Order: one customer checkout that fans out into one
// SubOrder per vendor. Each SubOrder advances through its own status and
// carrier TrackingTimeline; the parent order's status is never written
// directly but derived from the sub-order set after every accepted mutation.
// Payment and refund state lives in Payment and evolves independently of
// shipment progress. Every accepted transition in any of the machines is
// recorded in the append-only History and surfaced as a StatusChangedEvent
// for the notification outbox.
//
// Status transitions are validated by StatusPolicy, a fixed adjacency table
// combined with actor-role scoping. Rejected transitions return
// InvalidTransitionError and leave the aggregate untouched.
package order
