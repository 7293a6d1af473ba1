package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves the customer-facing tracking snapshot of one
// order: per-shipment carrier details and accepted tracking events. This is
// the hottest read in the system (customers poll it), so the handler caches
// the rendered snapshot with a short TTL.
type TrackOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for an order's tracking snapshot.
func NewTrackOrderQuery(orderID kernel.UUID) (TrackOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q TrackOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TrackingEventView is one accepted carrier event. The JSON shape doubles
// as the cache payload.
type TrackingEventView struct {
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// ShipmentView is the tracking state of one sub-order.
type ShipmentView struct {
	SubOrderID        string              `json:"subOrderId"`
	VendorOrderNumber string              `json:"vendorOrderNumber"`
	Status            string              `json:"status"`
	TrackingNumber    string              `json:"trackingNumber,omitempty"`
	Carrier           string              `json:"carrier,omitempty"`
	TrackingURL       string              `json:"trackingUrl,omitempty"`
	Events            []TrackingEventView `json:"events"`
}

// TrackOrderQueryResponse is the order-level tracking snapshot.
type TrackOrderQueryResponse struct {
	OrderID     string         `json:"orderId"`
	OrderNumber string         `json:"orderNumber"`
	Status      string         `json:"status"`
	Shipments   []ShipmentView `json:"shipments"`
}
