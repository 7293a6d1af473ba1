package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetVendorOrdersQueryIsNotConstructed = errors.New(
	"GetVendorOrdersQuery must be created via NewGetVendorOrdersQuery constructor",
)

// GetVendorOrdersQuery lists one vendor's sub-orders for their fulfillment
// dashboard, optionally filtered by status.
//
// Example:
//
//	query, err := NewGetVendorOrdersQuery(vendorID, "processing")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetVendorOrdersQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
type GetVendorOrdersQuery struct {
	vendorID kernel.UUID
	status   order.Status
	filtered bool

	guard guard.ConstructorGuard
}

// NewGetVendorOrdersQuery creates a query for a vendor's sub-orders.
// An empty status means no filtering.
func NewGetVendorOrdersQuery(vendorID kernel.UUID, status string) (GetVendorOrdersQuery, error) {
	vendorQuery := GetVendorOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := vendorID.Validate(); err != nil {
		return GetVendorOrdersQuery{}, err
	}
	vendorQuery.vendorID = vendorID

	if status != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return GetVendorOrdersQuery{}, err
		}
		vendorQuery.status = parsed
		vendorQuery.filtered = true
	}

	return vendorQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVendorOrdersQueryIsNotConstructed if validation fails.
func (q GetVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrdersQueryIsNotConstructed)
}

// VendorID returns the vendor whose sub-orders are requested.
func (q GetVendorOrdersQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// Status returns the status filter. Meaningful only when Filtered is true.
func (q GetVendorOrdersQuery) Status() order.Status {
	return q.status
}

// Filtered reports whether a status filter was supplied.
func (q GetVendorOrdersQuery) Filtered() bool {
	return q.filtered
}

// VendorOrderView is one row of the vendor dashboard.
type VendorOrderView struct {
	OrderID           string
	OrderNumber       string
	SubOrderID        string
	VendorOrderNumber string
	Status            string
	ItemCount         int
	ItemsTotal        float64
	PlacedAt          time.Time
}
