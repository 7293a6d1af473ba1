package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCartItemsAreRequired = errors.New("at least one cart item is required")
)

// PlaceOrderItem is one cart line in a place-order request. Name, SKU, and
// unit price are catalog values the caller already resolved; they get frozen
// into the order as a product snapshot.
type PlaceOrderItem struct {
	ProductID kernel.UUID
	VendorID  kernel.UUID
	Name      string
	SKU       string
	Quantity  int
	UnitPrice float64
}

// PlaceOrderAddress carries the shipping destination fields of a
// place-order request.
type PlaceOrderAddress struct {
	RecipientName string
	Contact       string
	Street        string
	City          string
	Country       string
	Instructions  string
}

// PlaceOrderPricing carries the customer-visible price breakdown of a
// place-order request. The domain validates arithmetic consistency.
type PlaceOrderPricing struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Discount float64
	Total    float64
	Currency string
}

// PlaceOrderCommand represents a request to place a new multi-vendor order.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID, items, address, pricing, "card", "leave at door")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, services.NewOrderFactory())
//	result, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	items         []PlaceOrderItem
	address       PlaceOrderAddress
	pricing       PlaceOrderPricing
	paymentMethod order.PaymentMethod
	customerNotes string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. Validates the
// customer ID, that the cart is non-empty, and that the payment method
// parses; deeper validation (pricing arithmetic, snapshot fields) happens in
// the domain when the handler assembles the aggregate.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	items []PlaceOrderItem,
	address PlaceOrderAddress,
	pricing PlaceOrderPricing,
	paymentMethod string,
	customerNotes string,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setCustomerID(customerID),
		placeCommand.setItems(items),
		placeCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	placeCommand.address = address
	placeCommand.pricing = pricing
	placeCommand.customerNotes = customerNotes

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the customer placing the order.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the cart lines.
func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	return c.items
}

// Address returns the shipping destination.
func (c PlaceOrderCommand) Address() PlaceOrderAddress {
	return c.address
}

// Pricing returns the price breakdown.
func (c PlaceOrderCommand) Pricing() PlaceOrderPricing {
	return c.pricing
}

// PaymentMethod returns the parsed payment method.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// CustomerNotes returns the optional checkout note.
func (c PlaceOrderCommand) CustomerNotes() string {
	return c.customerNotes
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return ErrCartItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod string) error {
	method, err := order.PaymentMethodFromString(paymentMethod)
	if err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
