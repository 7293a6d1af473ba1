package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// PlaceOrderResult identifies the order a successful placement produced.
type PlaceOrderResult struct {
	OrderID     kernel.UUID
	OrderNumber string
}

// PlaceOrderCommandHandler handles the business logic for order placement.
// Delegates cart splitting and number generation to the order factory, then
// persists the new aggregate and its creation notifications atomically.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, services.NewOrderFactory())
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("placed order %s", result.OrderNumber)
type PlaceOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	orderFactory services.OrderFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	orderFactory services.OrderFactory,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:   uowFactory,
		orderFactory: orderFactory,
	}
}

// Handle processes the place-order command. Builds the domain objects from
// the command's raw fields, assembles the aggregate through the factory, and
// persists it together with its creation notifications.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	address, err := order.NewShippingAddress(
		cmd.Address().RecipientName,
		cmd.Address().Contact,
		cmd.Address().Street,
		cmd.Address().City,
		cmd.Address().Country,
		cmd.Address().Instructions,
	)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	pricing, err := order.NewPricing(
		cmd.Pricing().Subtotal,
		cmd.Pricing().Shipping,
		cmd.Pricing().Tax,
		cmd.Pricing().Discount,
		cmd.Pricing().Total,
		cmd.Pricing().Currency,
	)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	cartItems := make([]services.CartItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		cartItems = append(cartItems, services.CartItem{
			ProductID: item.ProductID,
			VendorID:  item.VendorID,
			Name:      item.Name,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	aggregate, err := h.orderFactory.CreateOrder(services.CheckoutRequest{
		CustomerID:    cmd.CustomerID(),
		Items:         cartItems,
		Address:       address,
		Pricing:       pricing,
		PaymentMethod: cmd.PaymentMethod(),
		CustomerNotes: cmd.CustomerNotes(),
		PlacedAt:      time.Now().UTC(),
	})
	if err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = enqueueNotifications(ctx, uow.OutboxRepository(), aggregate); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.OrderNumber(),
	}, nil
}
