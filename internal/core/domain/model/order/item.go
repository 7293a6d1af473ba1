package order

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Domain errors for order items.
var (
	// ErrProductNameIsRequired is returned when a snapshot has no product name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")
	// ErrQuantityIsInvalid is returned for quantities below 1.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity")
	// ErrUnitPriceIsInvalid is returned for negative unit prices.
	ErrUnitPriceIsInvalid = errs.NewValueIsInvalidError("unit price")
)

// ProductSnapshot captures a product's name, SKU, and price at order time.
// The catalog is queried exactly once, at placement; later catalog edits
// never reach an existing order.
type ProductSnapshot struct {
	name  string
	sku   string
	price float64
}

// NewProductSnapshot creates a frozen product snapshot. The name is
// required; the SKU may be empty for catalog entries without one.
func NewProductSnapshot(name, sku string, price float64) (ProductSnapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ProductSnapshot{}, ErrProductNameIsRequired
	}
	if price < 0 {
		return ProductSnapshot{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}

	return ProductSnapshot{name: name, sku: strings.TrimSpace(sku), price: price}, nil
}

// Name returns the product name at order time.
func (s ProductSnapshot) Name() string {
	return s.name
}

// SKU returns the product SKU at order time, possibly empty.
func (s ProductSnapshot) SKU() string {
	return s.sku
}

// Price returns the catalog price at order time.
func (s ProductSnapshot) Price() float64 {
	return s.price
}

// OrderItem is one line of a sub-order: a product reference with its frozen
// snapshot, a quantity, and the unit price the customer was charged. The
// line total is always recomputed from quantity and unit price, never set.
type OrderItem struct {
	productID kernel.UUID
	snapshot  ProductSnapshot
	quantity  int
	unitPrice float64
}

// NewOrderItem creates an order line. Quantity must be at least 1 and the
// unit price non-negative.
func NewOrderItem(productID kernel.UUID, snapshot ProductSnapshot, quantity int, unitPrice float64) (OrderItem, error) {
	if err := errors.Join(productID.Validate(), snapshot.Validate()); err != nil {
		return OrderItem{}, err
	}
	if quantity < 1 {
		return OrderItem{}, ErrQuantityIsInvalid
	}
	if unitPrice < 0 {
		return OrderItem{}, ErrUnitPriceIsInvalid
	}

	return OrderItem{
		productID: productID,
		snapshot:  snapshot,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// Validate returns an error for zero-value snapshots.
func (s ProductSnapshot) Validate() error {
	if s.name == "" {
		return ErrProductNameIsRequired
	}
	return nil
}

// ProductID returns the weak reference into the external catalog.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Snapshot returns the frozen product snapshot.
func (i OrderItem) Snapshot() ProductSnapshot {
	return i.snapshot
}

// Quantity returns the ordered quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price charged per unit.
func (i OrderItem) UnitPrice() float64 {
	return i.unitPrice
}

// TotalPrice returns quantity times unit price. Always derived.
func (i OrderItem) TotalPrice() float64 {
	return float64(i.quantity) * i.unitPrice
}
