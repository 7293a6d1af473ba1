package order

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Domain errors for sub-orders.
var (
	// ErrItemsAreRequired is returned when creating a sub-order without items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrVendorOrderNumberIsRequired is returned when creating a sub-order without its number.
	ErrVendorOrderNumberIsRequired = errs.NewValueIsRequiredError("vendor order number")
	// ErrTrackingAlreadyAttached is returned when attaching a second, different
	// tracking timeline to a sub-order.
	ErrTrackingAlreadyAttached = errors.New("sub-order already has a tracking timeline")
	// ErrTrackingIsRequired is returned when attaching a nil tracking timeline.
	ErrTrackingIsRequired = errs.NewValueIsRequiredError("tracking timeline")
)

// SubOrder is one vendor's slice of an order: the vendor's items, the
// vendor-scoped fulfillment status, and, once shipped, the carrier tracking
// timeline. Sub-orders are owned by their Order and only mutated through it,
// which is how the parent's derived status stays consistent.
type SubOrder struct {
	id                kernel.UUID
	vendorOrderNumber string
	vendorID          kernel.UUID
	items             []OrderItem
	status            Status
	tracking          *TrackingTimeline
}

// NewSubOrder creates a pending sub-order for one vendor's items. The item
// list must be non-empty; the vendor order number is derived from the parent
// order number by the order factory.
func NewSubOrder(id kernel.UUID, vendorOrderNumber string, vendorID kernel.UUID, items []OrderItem) (*SubOrder, error) {
	if err := errors.Join(id.Validate(), vendorID.Validate()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(vendorOrderNumber) == "" {
		return nil, ErrVendorOrderNumberIsRequired
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	return &SubOrder{
		id:                id,
		vendorOrderNumber: vendorOrderNumber,
		vendorID:          vendorID,
		items:             append([]OrderItem{}, items...),
		status:            Pending,
	}, nil
}

// RestoreSubOrder reconstructs a sub-order from persistence with its
// persisted status and optional tracking timeline.
func RestoreSubOrder(
	id kernel.UUID,
	vendorOrderNumber string,
	vendorID kernel.UUID,
	items []OrderItem,
	status Status,
	tracking *TrackingTimeline,
) (*SubOrder, error) {
	subOrder, err := NewSubOrder(id, vendorOrderNumber, vendorID, items)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	subOrder.status = status
	subOrder.tracking = tracking
	return subOrder, nil
}

// ID returns the sub-order's unique identifier.
func (s *SubOrder) ID() kernel.UUID {
	return s.id
}

// VendorOrderNumber returns the human-readable sub-order number, derived
// from the parent order number and the vendor's position within it.
func (s *SubOrder) VendorOrderNumber() string {
	return s.vendorOrderNumber
}

// VendorID returns the vendor fulfilling this sub-order.
func (s *SubOrder) VendorID() kernel.UUID {
	return s.vendorID
}

// Items returns a copy of the sub-order's lines.
func (s *SubOrder) Items() []OrderItem {
	return append([]OrderItem{}, s.items...)
}

// Status returns the sub-order's current fulfillment status.
func (s *SubOrder) Status() Status {
	return s.status
}

// Tracking returns the carrier timeline, or nil before the vendor ships.
func (s *SubOrder) Tracking() *TrackingTimeline {
	return s.tracking
}

// ItemsTotal returns the sum of the sub-order's line totals.
func (s *SubOrder) ItemsTotal() float64 {
	var total float64
	for _, item := range s.items {
		total += item.TotalPrice()
	}
	return total
}

// AttachTracking attaches the carrier timeline once the vendor ships.
// Re-attaching the same tracking number is a no-op; attaching a different
// one fails.
func (s *SubOrder) AttachTracking(tracking *TrackingTimeline) error {
	if tracking == nil {
		return ErrTrackingIsRequired
	}
	if s.tracking != nil {
		if s.tracking.TrackingNumber() == tracking.TrackingNumber() {
			return nil
		}
		return ErrTrackingAlreadyAttached
	}

	s.tracking = tracking
	return nil
}

// changeStatus applies an already authorized transition. Callers go through
// Order so that policy checks, history, and derivation stay in one place.
func (s *SubOrder) changeStatus(to Status) {
	s.status = to
}
