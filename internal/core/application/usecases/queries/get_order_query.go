// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its sub-orders, items, payment,
// and tracking summaries.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by ID.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemView is one order line in the read model.
type OrderItemView struct {
	ProductID string
	Name      string
	SKU       string
	Quantity  int
	UnitPrice float64
	Total     float64
}

// SubOrderView is one vendor's shipment in the read model.
type SubOrderView struct {
	ID                string
	VendorOrderNumber string
	VendorID          string
	Status            string
	TrackingNumber    string
	Carrier           string
	TrackingURL       string
	Items             []OrderItemView
}

// PaymentView is the payment summary in the read model.
type PaymentView struct {
	Method        string
	Status        string
	Amount        float64
	Currency      string
	RefundedTotal float64
}

// GetOrderQueryResponse is the full order read model served to customers
// and admins.
type GetOrderQueryResponse struct {
	ID            string
	OrderNumber   string
	CustomerID    string
	Status        string
	Subtotal      float64
	Shipping      float64
	Tax           float64
	Discount      float64
	Total         float64
	Currency      string
	Payment       PaymentView
	SubOrders     []SubOrderView
	CustomerNotes string
	PlacedAt      time.Time
}
