package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for the order aggregate.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrEmptyCart is returned when placing an order without any sub-orders.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrDuplicateVendor is returned when two sub-orders share a vendor.
	ErrDuplicateVendor = errors.New("vendor appears in more than one sub-order")
	// ErrOrderNumberIsRequired is returned when creating an order without a number.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("order number")
)

// CancelResult reports the outcome of one sub-order within a cancellation
// fan-out. Cancellation is best effort: sub-orders past the cancellable
// window stay as they are and the caller receives one result per sub-order
// rather than a single boolean.
type CancelResult struct {
	// SubOrderID identifies the sub-order the result refers to.
	SubOrderID kernel.UUID
	// VendorOrderNumber is the human-readable sub-order number.
	VendorOrderNumber string
	// Cancelled is true when this call cancelled the sub-order.
	Cancelled bool
	// Reason explains why the sub-order was not cancelled. Empty on success.
	Reason string
}

// Order is the aggregate root for one customer checkout spanning possibly
// many vendors. It owns its sub-orders, payment state, and audit history;
// deleting or archiving the order disposes of all of them. Customer, vendor,
// and product identifiers are weak references resolved by external
// collaborators.
//
// The order's own status is derived from the sub-order set after every
// accepted mutation and is never writable from outside; see deriveStatus
// for the aggregation rules. All sub-order mutations flow through the
// aggregate so that policy checks, history, derivation, and event emission
// happen in one place, under whatever concurrency control the caller holds
// for the aggregate.
//
// Example:
//
//	err := ord.UpdateSubOrderStatus(subOrderID, order.Confirmed, vendorActor, "in stock", time.Now())
//	if err != nil {
//	    var transitionErr *order.InvalidTransitionError
//	    if errors.As(err, &transitionErr) {
//	        // surface to the actor verbatim
//	    }
//	}
type Order struct {
	id            kernel.UUID
	orderNumber   string
	customerID    kernel.UUID
	address       ShippingAddress
	pricing       Pricing
	payment       *Payment
	subOrders     []*SubOrder
	status        Status
	history       *History
	placedAt      time.Time
	customerNotes string

	// version is the optimistic-concurrency token checked by the repository
	// on update. Zero for fresh aggregates.
	version int

	policy StatusPolicy
	events []StatusChangedEvent
	guard  guard.ConstructorGuard
}

// NewOrder creates a freshly placed order from already constructed parts.
// Use the services.OrderFactory to build the parts from a raw checkout
// request; this constructor enforces the aggregate invariants:
//
//   - at least one sub-order
//   - each vendor appears in exactly one sub-order
//   - the sub-order item totals sum to pricing.Subtotal within tolerance
//
// All sub-orders start Pending, and one creation history entry plus one
// creation event is written per scope (order, each sub-order, payment).
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	address ShippingAddress,
	pricing Pricing,
	payment *Payment,
	subOrders []*SubOrder,
	customerNotes string,
	placedBy Actor,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		policy: NewStatusPolicy(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setPricing(pricing),
		o.setPayment(payment),
		o.setSubOrders(subOrders),
	); err != nil {
		return nil, err
	}

	if err := o.checkSubtotal(); err != nil {
		return nil, err
	}

	o.customerNotes = strings.TrimSpace(customerNotes)
	o.placedAt = placedAt
	o.history = NewHistory()
	o.status = deriveStatus(o.subOrderStatuses())

	o.recordTransition(OrderScope(), "", o.status.String(), placedBy, "order placed", placedAt)
	for _, subOrder := range o.subOrders {
		o.recordTransition(SubOrderScope(subOrder.ID()), "", subOrder.Status().String(), placedBy, "sub-order created", placedAt)
	}
	o.recordTransition(PaymentScope(), "", o.payment.Status().String(), placedBy, "payment initialized", placedAt)

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence. The derived
// status is recomputed from the restored sub-orders rather than trusted,
// so a stale persisted cache can never surface.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	address ShippingAddress,
	pricing Pricing,
	payment *Payment,
	subOrders []*SubOrder,
	history *History,
	customerNotes string,
	placedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		policy: NewStatusPolicy(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setPricing(pricing),
		o.setPayment(payment),
		o.setSubOrders(subOrders),
	); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("%d is negative", version))
	}

	o.customerNotes = strings.TrimSpace(customerNotes)
	o.placedAt = placedAt
	o.version = version
	o.history = history
	if o.history == nil {
		o.history = NewHistory()
	}
	o.status = deriveStatus(o.subOrderStatuses())

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// UpdateSubOrderStatus applies one vendor- or admin-requested transition to
// a sub-order. The transition is validated by StatusPolicy, recorded in
// history, emitted as an event, and followed by a synchronous recomputation
// of the order's derived status. On rejection nothing changes.
func (o *Order) UpdateSubOrderStatus(subOrderID kernel.UUID, to Status, actor Actor, note string, at time.Time) error {
	subOrder, err := o.subOrderByID(subOrderID)
	if err != nil {
		return err
	}

	scope := SubOrderScope(subOrderID)
	if err = o.policy.Authorize(TransitionRequest{
		Scope:           scope,
		From:            subOrder.Status(),
		To:              to,
		Actor:           actor,
		OwnsOrder:       actor.ID().IsEqual(o.customerID),
		OwnsSubOrder:    actor.ActsForVendor(subOrder.VendorID()),
		PaymentRefunded: o.payment.IsFullyRefunded(),
	}); err != nil {
		return err
	}

	from := subOrder.Status()
	subOrder.changeStatus(to)
	o.recordTransition(scope, from.String(), to.String(), actor, note, at)
	o.recompute(actor, at)
	return nil
}

// Cancel attempts to cancel every still-cancellable sub-order on behalf of
// the actor. Partial success is valid: sub-orders past the cancellable
// window (or already terminal) are reported, not rolled back. Calling
// Cancel on a fully cancelled order is a no-op returning the same
// per-sub-order results.
func (o *Order) Cancel(actor Actor, reason string, at time.Time) ([]CancelResult, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	results := make([]CancelResult, 0, len(o.subOrders))
	for _, subOrder := range o.subOrders {
		result := CancelResult{
			SubOrderID:        subOrder.ID(),
			VendorOrderNumber: subOrder.VendorOrderNumber(),
		}

		if subOrder.Status().IsTerminal() {
			result.Reason = fmt.Sprintf("already terminal (%s)", subOrder.Status())
			results = append(results, result)
			continue
		}

		if err := o.UpdateSubOrderStatus(subOrder.ID(), Cancelled, actor, reason, at); err != nil {
			result.Reason = err.Error()
			results = append(results, result)
			continue
		}

		result.Cancelled = true
		results = append(results, result)
	}

	return results, nil
}

// RecordTrackingEvent appends a carrier event to a sub-order's tracking
// timeline, attaching the timeline on first contact. Accepted delivered
// events drive the automatic Shipped → Delivered transition under the
// system actor. Stale or duplicate events land in the timeline's side log
// and return accepted=false without touching any status.
func (o *Order) RecordTrackingEvent(
	subOrderID kernel.UUID,
	trackingNumber string,
	carrier Carrier,
	trackingURL string,
	event TrackingEvent,
	at time.Time,
) (accepted bool, err error) {
	subOrder, err := o.subOrderByID(subOrderID)
	if err != nil {
		return false, err
	}

	if subOrder.Tracking() == nil {
		timeline, timelineErr := NewTrackingTimeline(trackingNumber, carrier, trackingURL)
		if timelineErr != nil {
			return false, timelineErr
		}
		if err = subOrder.AttachTracking(timeline); err != nil {
			return false, err
		}
	}

	accepted = subOrder.Tracking().RecordEvent(event)
	if !accepted {
		return false, nil
	}

	if event.Status() == TrackingDelivered && subOrder.Status() == Shipped {
		note := fmt.Sprintf("carrier %s reported delivery", subOrder.Tracking().Carrier())
		if err = o.UpdateSubOrderStatus(subOrderID, Delivered, SystemActor(), note, at); err != nil {
			return true, err
		}
	}

	return true, nil
}

// ConfirmPayment marks the payment captured. Restricted to admin and system
// actors; the payment machine itself enforces that only pending payments
// confirm.
func (o *Order) ConfirmPayment(actor Actor, at time.Time) error {
	if err := o.requirePaymentActor(actor); err != nil {
		return err
	}

	from := o.payment.Status()
	if err := o.payment.Confirm(); err != nil {
		return err
	}

	o.recordTransition(PaymentScope(), from.String(), o.payment.Status().String(), actor, "payment confirmed", at)
	return nil
}

// FailPayment marks a pending payment as failed. Restricted to admin and
// system actors.
func (o *Order) FailPayment(actor Actor, note string, at time.Time) error {
	if err := o.requirePaymentActor(actor); err != nil {
		return err
	}

	from := o.payment.Status()
	if err := o.payment.Fail(); err != nil {
		return err
	}

	o.recordTransition(PaymentScope(), from.String(), o.payment.Status().String(), actor, note, at)
	return nil
}

// RefundPayment records a processed refund against the payment. Admin only.
// Refunds never change order or sub-order status; marking the order itself
// refunded is a separate admin workflow (MarkRefunded).
func (o *Order) RefundPayment(amount float64, reason string, actor Actor, at time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != RoleAdmin {
		return &PaymentTransitionError{
			From:   o.payment.Status(),
			To:     PaymentRefunded,
			Reason: fmt.Sprintf("%s may not refund payments", actor.Role()),
		}
	}

	from := o.payment.Status()
	if err := o.payment.Refund(amount, reason, at); err != nil {
		return err
	}

	o.recordTransition(PaymentScope(), from.String(), o.payment.Status().String(), actor, reason, at)
	return nil
}

// MarkRefunded transitions a finished or cancelled order to Refunded once
// the payment has been fully refunded. The operation is all-or-nothing:
// every sub-order must be in a terminal state that permits the refund edge,
// otherwise nothing changes and the first violation is returned.
func (o *Order) MarkRefunded(actor Actor, note string, at time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	// pre-validate every sub-order before touching any of them
	for _, subOrder := range o.subOrders {
		if subOrder.Status() == Refunded {
			continue
		}
		if err := o.policy.Authorize(TransitionRequest{
			Scope:           SubOrderScope(subOrder.ID()),
			From:            subOrder.Status(),
			To:              Refunded,
			Actor:           actor,
			OwnsSubOrder:    actor.ActsForVendor(subOrder.VendorID()),
			PaymentRefunded: o.payment.IsFullyRefunded(),
		}); err != nil {
			return err
		}
	}

	for _, subOrder := range o.subOrders {
		if subOrder.Status() == Refunded {
			continue
		}
		from := subOrder.Status()
		subOrder.changeStatus(Refunded)
		o.recordTransition(SubOrderScope(subOrder.ID()), from.String(), Refunded.String(), actor, note, at)
	}

	o.recompute(actor, at)
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the immutable human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ShippingAddress returns the delivery destination captured at checkout.
func (o *Order) ShippingAddress() ShippingAddress {
	return o.address
}

// Pricing returns the checked price breakdown.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Payment returns the payment state machine.
func (o *Order) Payment() *Payment {
	return o.payment
}

// SubOrders returns the sub-orders in their checkout order. The slice is a
// copy; the sub-orders are the aggregate's own.
func (o *Order) SubOrders() []*SubOrder {
	return append([]*SubOrder{}, o.subOrders...)
}

// SubOrder returns the sub-order with the given ID.
func (o *Order) SubOrder(id kernel.UUID) (*SubOrder, error) {
	return o.subOrderByID(id)
}

// Status returns the derived order status. It is recomputed after every
// accepted mutation and therefore never stale.
func (o *Order) Status() Status {
	return o.status
}

// History returns the append-only audit trail.
func (o *Order) History() *History {
	return o.history
}

// PlacedAt returns the creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// CustomerNotes returns the optional checkout note, possibly empty.
func (o *Order) CustomerNotes() string {
	return o.customerNotes
}

// Version returns the optimistic-concurrency token loaded with the
// aggregate. The repository bumps it on every successful update.
func (o *Order) Version() int {
	return o.version
}

// PendingEvents returns the events accumulated since the aggregate was
// loaded, in emission order.
func (o *Order) PendingEvents() []StatusChangedEvent {
	return append([]StatusChangedEvent{}, o.events...)
}

// ClearPendingEvents drops accumulated events after they have been handed
// to the outbox.
func (o *Order) ClearPendingEvents() {
	o.events = nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// recompute re-derives the order status from the sub-order set and, when it
// changed, records the order-scope transition.
func (o *Order) recompute(actor Actor, at time.Time) {
	derived := deriveStatus(o.subOrderStatuses())
	if derived == o.status {
		return
	}

	from := o.status
	o.status = derived
	o.recordTransition(OrderScope(), from.String(), derived.String(), actor, "derived from sub-order statuses", at)
}

// recordTransition appends the history entry and the matching event for one
// accepted transition.
func (o *Order) recordTransition(scope Scope, from, to string, actor Actor, note string, at time.Time) {
	o.history.Append(scope, from, to, actor, note, at)
	o.events = append(o.events, StatusChangedEvent{
		OrderID:    o.id,
		Scope:      scope,
		From:       from,
		To:         to,
		OccurredAt: at,
	})
}

func (o *Order) requirePaymentActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != RoleAdmin && actor.Role() != RoleSystem {
		return &PaymentTransitionError{
			From:   o.payment.Status(),
			To:     o.payment.Status(),
			Reason: fmt.Sprintf("%s may not operate on payments", actor.Role()),
		}
	}
	return nil
}

func (o *Order) subOrderByID(id kernel.UUID) (*SubOrder, error) {
	for _, subOrder := range o.subOrders {
		if subOrder.ID().IsEqual(id) {
			return subOrder, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("subOrder", id.String())
}

func (o *Order) subOrderStatuses() []Status {
	statuses := make([]Status, 0, len(o.subOrders))
	for _, subOrder := range o.subOrders {
		statuses = append(statuses, subOrder.Status())
	}
	return statuses
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address ShippingAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}

func (o *Order) setPayment(payment *Payment) error {
	if payment == nil {
		return ErrPaymentIsNotConstructed
	}
	o.payment = payment
	return nil
}

func (o *Order) setSubOrders(subOrders []*SubOrder) error {
	if len(subOrders) == 0 {
		return ErrEmptyCart
	}

	seen := make(map[kernel.UUID]struct{}, len(subOrders))
	for _, subOrder := range subOrders {
		if subOrder == nil {
			return ErrEmptyCart
		}
		if _, dup := seen[subOrder.VendorID()]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateVendor, subOrder.VendorID())
		}
		seen[subOrder.VendorID()] = struct{}{}
	}

	o.subOrders = append([]*SubOrder{}, subOrders...)
	return nil
}

// checkSubtotal verifies that the sub-order item totals sum to the supplied
// pricing subtotal within tolerance.
func (o *Order) checkSubtotal() error {
	var computed float64
	for _, subOrder := range o.subOrders {
		computed += subOrder.ItemsTotal()
	}

	if !kernel.AmountsEqual(computed, o.pricing.Subtotal()) {
		return NewPricingMismatchError("subtotal", computed, o.pricing.Subtotal())
	}
	return nil
}
