package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// CartItem is one line of a checkout cart before vendor splitting. Product
// name, SKU, and price are the caller-resolved catalog values that get
// frozen into the order as a snapshot.
type CartItem struct {
	ProductID kernel.UUID
	VendorID  kernel.UUID
	Name      string
	SKU       string
	Quantity  int
	UnitPrice float64
}

// CheckoutRequest carries everything needed to place one order.
type CheckoutRequest struct {
	CustomerID    kernel.UUID
	Items         []CartItem
	Address       order.ShippingAddress
	Pricing       order.Pricing
	PaymentMethod order.PaymentMethod
	CustomerNotes string
	PlacedAt      time.Time
}

// OrderFactory is a domain service that turns a checkout cart into an order
// aggregate. It splits the cart by vendor into sub-orders, generates the
// order number and per-vendor sub-order numbers, and hands the assembled
// parts to the aggregate constructor, which enforces the pricing invariant.
//
// Business rules:
//   - each vendor in the cart yields exactly one sub-order
//   - vendor ordering follows first appearance in the cart
//   - order numbers are opaque and unique ("ORD-" plus ten hex characters)
//   - sub-order numbers suffix the order number with the vendor index
type OrderFactory struct{}

// NewOrderFactory creates a new OrderFactory instance.
func NewOrderFactory() OrderFactory {
	return OrderFactory{}
}

// CreateOrder builds the order aggregate from a checkout request. The
// customer becomes the acting party for the creation history entries.
func (f OrderFactory) CreateOrder(request CheckoutRequest) (*order.Order, error) {
	if len(request.Items) == 0 {
		return nil, order.ErrEmptyCart
	}

	orderNumber, err := f.generateOrderNumber()
	if err != nil {
		return nil, err
	}

	subOrders, err := f.splitByVendor(orderNumber, request.Items)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(request.Pricing.Total(), request.Pricing.Currency())
	if err != nil {
		return nil, err
	}
	payment, err := order.NewPayment(request.PaymentMethod, amount)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewActor(request.CustomerID, order.RoleCustomer, nil)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		kernel.NewUUID(),
		orderNumber,
		request.CustomerID,
		request.Address,
		request.Pricing,
		payment,
		subOrders,
		request.CustomerNotes,
		customer,
		request.PlacedAt,
	)
}

// splitByVendor groups cart items into one sub-order per vendor, preserving
// the vendor order of first appearance in the cart.
func (f OrderFactory) splitByVendor(orderNumber string, items []CartItem) ([]*order.SubOrder, error) {
	vendorOrder := make([]kernel.UUID, 0, len(items))
	grouped := make(map[kernel.UUID][]order.OrderItem, len(items))

	for _, item := range items {
		if err := item.VendorID.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("vendor ID", err)
		}

		snapshot, err := order.NewProductSnapshot(item.Name, item.SKU, item.UnitPrice)
		if err != nil {
			return nil, err
		}
		orderItem, err := order.NewOrderItem(item.ProductID, snapshot, item.Quantity, item.UnitPrice)
		if err != nil {
			return nil, err
		}

		if _, seen := grouped[item.VendorID]; !seen {
			vendorOrder = append(vendorOrder, item.VendorID)
		}
		grouped[item.VendorID] = append(grouped[item.VendorID], orderItem)
	}

	subOrders := make([]*order.SubOrder, 0, len(vendorOrder))
	for i, vendorID := range vendorOrder {
		vendorOrderNumber := fmt.Sprintf("%s-V%d", orderNumber, i+1)
		subOrder, err := order.NewSubOrder(kernel.NewUUID(), vendorOrderNumber, vendorID, grouped[vendorID])
		if err != nil {
			return nil, err
		}
		subOrders = append(subOrders, subOrder)
	}

	return subOrders, nil
}

func (f OrderFactory) generateOrderNumber() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate order number: %w", err)
	}
	return "ORD-" + hex.EncodeToString(buf), nil
}
