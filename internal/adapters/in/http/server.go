package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Actor headers. Every mutating endpoint reads the acting party from these;
// an upstream gateway is expected to have authenticated them.
const (
	headerActorID       = "X-Actor-Id"
	headerActorRole     = "X-Actor-Role"
	headerActorVendorID = "X-Actor-Vendor-Id"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler           commands.PlaceOrderCommandHandler
	updateSubOrderStatusHandler commands.UpdateSubOrderStatusCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	recordTrackingEventHandler  commands.RecordTrackingEventCommandHandler
	confirmPaymentHandler       commands.ConfirmPaymentCommandHandler
	failPaymentHandler          commands.FailPaymentCommandHandler
	refundPaymentHandler        commands.RefundPaymentCommandHandler
	markOrderRefundedHandler    commands.MarkOrderRefundedCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getVendorOrdersHandler queries.GetVendorOrdersQueryHandler
	trackOrderHandler      queries.TrackOrderQueryHandler

	// Mutations drop the cached tracking snapshot so customers polling
	// their order see the change before the TTL expires.
	trackingCache ports.TrackingCache
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateSubOrderStatusHandler commands.UpdateSubOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordTrackingEventHandler commands.RecordTrackingEventCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	failPaymentHandler commands.FailPaymentCommandHandler,
	refundPaymentHandler commands.RefundPaymentCommandHandler,
	markOrderRefundedHandler commands.MarkOrderRefundedCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getVendorOrdersHandler queries.GetVendorOrdersQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	trackingCache ports.TrackingCache,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		updateSubOrderStatusHandler: updateSubOrderStatusHandler,
		cancelOrderHandler:          cancelOrderHandler,
		recordTrackingEventHandler:  recordTrackingEventHandler,
		confirmPaymentHandler:       confirmPaymentHandler,
		failPaymentHandler:          failPaymentHandler,
		refundPaymentHandler:        refundPaymentHandler,
		markOrderRefundedHandler:    markOrderRefundedHandler,
		getOrderHandler:             getOrderHandler,
		getOrderHistoryHandler:      getOrderHistoryHandler,
		getVendorOrdersHandler:      getVendorOrdersHandler,
		trackOrderHandler:           trackOrderHandler,
		trackingCache:               trackingCache,
	}
}

// PlaceOrder handles POST /api/v1/orders - places a new multi-vendor order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(req.CustomerId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer ID: "+err.Error())
	}

	items := make([]commands.PlaceOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, itemErr := kernel.UUIDFromBytes(item.ProductId[:])
		if itemErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid product ID: "+itemErr.Error())
		}
		vendorID, itemErr := kernel.UUIDFromBytes(item.VendorId[:])
		if itemErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid vendor ID: "+itemErr.Error())
		}

		items = append(items, commands.PlaceOrderItem{
			ProductID: productID,
			VendorID:  vendorID,
			Name:      item.Name,
			SKU:       item.Sku,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	address := commands.PlaceOrderAddress{
		RecipientName: req.Address.RecipientName,
		Contact:       req.Address.Contact,
		Street:        req.Address.Street,
		City:          req.Address.City,
		Country:       req.Address.Country,
		Instructions:  deref(req.Address.Instructions),
	}

	pricing := commands.PlaceOrderPricing{
		Subtotal: req.Pricing.Subtotal,
		Shipping: req.Pricing.Shipping,
		Tax:      req.Pricing.Tax,
		Discount: req.Pricing.Discount,
		Total:    req.Pricing.Total,
		Currency: req.Pricing.Currency,
	}

	cmd, err := commands.NewPlaceOrderCommand(
		customerID, items, address, pricing, req.PaymentMethod, deref(req.CustomerNotes),
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	result, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		OrderId:     result.OrderID.Bytes(),
		OrderNumber: result.OrderNumber,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order with
// its sub-orders, items, and payment.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(response))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels the
// order's still-cancellable sub-orders and reports the per-shipment outcome.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, actorID, actorRole, actorVendorID, err := s.mutationParams(ctx, orderId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	var req servers.CancelOrderJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID, actorRole, actorVendorID, req.Reason)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid cancel data: "+err.Error())
	}

	results, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}
	s.invalidateTracking(ctx, orderID)

	response := make([]servers.CancelResult, len(results))
	for i, result := range results {
		response[i] = servers.CancelResult{
			SubOrderId:        result.SubOrderID.Bytes(),
			VendorOrderNumber: result.VendorOrderNumber,
			Cancelled:         result.Cancelled,
			Reason:            optional(result.Reason),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderHistory handles GET /api/v1/orders/{orderId}/history - retrieves
// the order's audit trail, optionally narrowed by scope and time window.
func (s *Server) GetOrderHistory(ctx echo.Context, orderId openapi_types.UUID, params servers.GetOrderHistoryParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	scope := ""
	if params.Scope != nil {
		scope = *params.Scope
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID, scope, params.From, params.To)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid history filter: "+err.Error())
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]servers.HistoryEntry, len(entries))
	for i, entry := range entries {
		response[i] = servers.HistoryEntry{
			Seq:       entry.Seq,
			Scope:     entry.Scope,
			From:      optional(entry.From),
			To:        entry.To,
			ActorId:   entry.ActorID,
			ActorRole: entry.ActorRole,
			Note:      optional(entry.Note),
			Timestamp: entry.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmPayment handles POST /api/v1/orders/{orderId}/payment/confirm.
func (s *Server) ConfirmPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, actorID, actorRole, actorVendorID, err := s.mutationParams(ctx, orderId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, actorID, actorRole, actorVendorID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid payment data: "+err.Error())
	}

	if err = s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}
	s.invalidateTracking(ctx, orderID)

	return ctx.NoContent(http.StatusNoContent)
}

// FailPayment handles POST /api/v1/orders/{orderId}/payment/fail.
func (s *Server) FailPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, actorID, actorRole, actorVendorID, err := s.mutationParams(ctx, orderId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	var req servers.FailPaymentJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewFailPaymentCommand(orderID, actorID, actorRole, actorVendorID, deref(req.Note))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid payment data: "+err.Error())
	}

	if err = s.failPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}
	s.invalidateTracking(ctx, orderID)

	return ctx.NoContent(http.StatusNoContent)
}

// RefundPayment handles POST /api/v1/orders/{orderId}/payment/refunds.
func (s *Server) RefundPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, actorID, actorRole, actorVendorID, err := s.mutationParams(ctx, orderId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	var req servers.RefundPaymentJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRefundPaymentCommand(
		orderID, actorID, actorRole, actorVendorID, req.Amount, req.Reason,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid refund data: "+err.Error())
	}

	if err = s.refundPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}
	s.invalidateTracking(ctx, orderID)

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderRefunded handles POST /api/v1/orders/{orderId}/refund - moves a
// fully refunded order's shipments to the refunded status.
func (s *Server) MarkOrderRefunded(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, actorID, actorRole, actorVendorID, err := s.mutationParams(ctx, orderId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	var req servers.MarkOrderRefundedJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewMarkOrderRefundedCommand(orderID, actorID, actorRole, actorVendorID, deref(req.Note))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid refund data: "+err.Error())
	}

	if err = s.markOrderRefundedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}
	s.invalidateTracking(ctx, orderID)

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateSubOrderStatus handles PATCH /api/v1/orders/{orderId}/sub-orders/{subOrderId}/status.
func (s *Server) UpdateSubOrderStatus(ctx echo.Context, orderId openapi_types.UUID, subOrderId openapi_types.UUID) error {
	orderID, actorID, actorRole, actorVendorID, err := s.mutationParams(ctx, orderId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}
	subOrderID, err := kernel.UUIDFromBytes(subOrderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid sub-order ID: "+err.Error())
	}

	var req servers.UpdateSubOrderStatusJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateSubOrderStatusCommand(
		orderID, subOrderID, req.Status, actorID, actorRole, actorVendorID, deref(req.Note),
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status data: "+err.Error())
	}

	if err = s.updateSubOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}
	s.invalidateTracking(ctx, orderID)

	return ctx.NoContent(http.StatusNoContent)
}

// RecordTrackingEvent handles POST /api/v1/orders/{orderId}/sub-orders/{subOrderId}/tracking-events.
func (s *Server) RecordTrackingEvent(ctx echo.Context, orderId openapi_types.UUID, subOrderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}
	subOrderID, err := kernel.UUIDFromBytes(subOrderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid sub-order ID: "+err.Error())
	}

	var req servers.RecordTrackingEventJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRecordTrackingEventCommand(
		orderID, subOrderID,
		req.TrackingNumber, req.Carrier, deref(req.TrackingUrl),
		req.Status, deref(req.Description), deref(req.Location),
		req.Timestamp,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid tracking data: "+err.Error())
	}

	accepted, err := s.recordTrackingEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}
	s.invalidateTracking(ctx, orderID)

	return ctx.JSON(http.StatusOK, servers.TrackingEventResult{Accepted: accepted})
}

// TrackOrder handles GET /api/v1/orders/{orderId}/tracking - retrieves the
// customer-facing tracking snapshot.
func (s *Server) TrackOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	snapshot, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingResponse(snapshot))
}

// GetVendorOrders handles GET /api/v1/vendors/{vendorId}/orders - lists one
// vendor's sub-orders, optionally filtered by status.
func (s *Server) GetVendorOrders(ctx echo.Context, vendorId openapi_types.UUID, params servers.GetVendorOrdersParams) error {
	vendorID, err := kernel.UUIDFromBytes(vendorId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid vendor ID: "+err.Error())
	}

	query, err := queries.NewGetVendorOrdersQuery(vendorID, deref(params.Status))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid filter: "+err.Error())
	}

	views, err := s.getVendorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]servers.VendorOrder, len(views))
	for i, view := range views {
		response[i] = servers.VendorOrder{
			OrderId:           storedUUID(view.OrderID),
			OrderNumber:       view.OrderNumber,
			SubOrderId:        storedUUID(view.SubOrderID),
			VendorOrderNumber: view.VendorOrderNumber,
			Status:            view.Status,
			ItemCount:         view.ItemCount,
			ItemsTotal:        view.ItemsTotal,
			PlacedAt:          view.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// mutationParams bundles the path and actor-header parsing every mutating
// endpoint starts with.
func (s *Server) mutationParams(
	ctx echo.Context,
	orderId openapi_types.UUID,
) (orderID, actorID kernel.UUID, actorRole string, actorVendorID *kernel.UUID, err error) {
	orderID, err = kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", nil, errors.New("invalid order ID: " + err.Error())
	}

	header := ctx.Request().Header

	rawActorID := header.Get(headerActorID)
	if rawActorID == "" {
		return kernel.UUID{}, kernel.UUID{}, "", nil, errors.New(headerActorID + " header is required")
	}
	actorID, err = kernel.UUIDFromString(rawActorID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", nil, errors.New("invalid " + headerActorID + " header: " + err.Error())
	}

	actorRole = header.Get(headerActorRole)
	if actorRole == "" {
		return kernel.UUID{}, kernel.UUID{}, "", nil, errors.New(headerActorRole + " header is required")
	}

	if rawVendorID := header.Get(headerActorVendorID); rawVendorID != "" {
		vendorID, vendorErr := kernel.UUIDFromString(rawVendorID)
		if vendorErr != nil {
			return kernel.UUID{}, kernel.UUID{}, "", nil, errors.New("invalid " + headerActorVendorID + " header: " + vendorErr.Error())
		}
		actorVendorID = &vendorID
	}

	return orderID, actorID, actorRole, actorVendorID, nil
}

// invalidateTracking drops the cached tracking snapshot after a successful
// mutation. Best effort; the snapshot also carries a short TTL.
func (s *Server) invalidateTracking(ctx echo.Context, orderID kernel.UUID) {
	if s.trackingCache == nil {
		return
	}
	_ = s.trackingCache.Invalidate(ctx.Request().Context(), queries.TrackingCacheKey(orderID.String()))
}

// writeDomainError maps use-case errors to HTTP status codes.
func writeDomainError(ctx echo.Context, err error) error {
	var (
		invalidTransition *order.InvalidTransitionError
		paymentTransition *order.PaymentTransitionError
		refundExceeds     *order.RefundExceedsAmountError
		pricingMismatch   *order.PricingMismatchError
	)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrConcurrentModification):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.As(err, &invalidTransition), errors.As(err, &paymentTransition):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.As(err, &refundExceeds), errors.As(err, &pricingMismatch):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// orderResponse maps the order read model to the wire schema.
func orderResponse(view queries.GetOrderQueryResponse) servers.Order {
	subOrders := make([]servers.SubOrder, len(view.SubOrders))
	for i, subOrder := range view.SubOrders {
		items := make([]servers.OrderItem, len(subOrder.Items))
		for j, item := range subOrder.Items {
			items[j] = servers.OrderItem{
				ProductId: storedUUID(item.ProductID),
				Name:      item.Name,
				Sku:       item.SKU,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Total:     item.Total,
			}
		}

		subOrders[i] = servers.SubOrder{
			Id:                storedUUID(subOrder.ID),
			VendorId:          storedUUID(subOrder.VendorID),
			VendorOrderNumber: subOrder.VendorOrderNumber,
			Status:            subOrder.Status,
			TrackingNumber:    optional(subOrder.TrackingNumber),
			Carrier:           optional(subOrder.Carrier),
			TrackingUrl:       optional(subOrder.TrackingURL),
			Items:             items,
		}
	}

	return servers.Order{
		Id:          storedUUID(view.ID),
		OrderNumber: view.OrderNumber,
		CustomerId:  storedUUID(view.CustomerID),
		Status:      view.Status,
		Pricing: servers.Pricing{
			Subtotal: view.Subtotal,
			Shipping: view.Shipping,
			Tax:      view.Tax,
			Discount: view.Discount,
			Total:    view.Total,
			Currency: view.Currency,
		},
		Payment: servers.Payment{
			Method:        view.Payment.Method,
			Status:        view.Payment.Status,
			Amount:        view.Payment.Amount,
			Currency:      view.Payment.Currency,
			RefundedTotal: view.Payment.RefundedTotal,
		},
		SubOrders:     subOrders,
		CustomerNotes: optional(view.CustomerNotes),
		PlacedAt:      view.PlacedAt,
	}
}

// trackingResponse maps the tracking snapshot to the wire schema.
func trackingResponse(snapshot queries.TrackOrderQueryResponse) servers.TrackingSnapshot {
	shipments := make([]servers.Shipment, len(snapshot.Shipments))
	for i, shipment := range snapshot.Shipments {
		events := make([]servers.TrackingEvent, len(shipment.Events))
		for j, event := range shipment.Events {
			events[j] = servers.TrackingEvent{
				Status:      event.Status,
				Description: event.Description,
				Location:    optional(event.Location),
				Timestamp:   event.Timestamp,
			}
		}

		shipments[i] = servers.Shipment{
			SubOrderId:        storedUUID(shipment.SubOrderID),
			VendorOrderNumber: shipment.VendorOrderNumber,
			Status:            shipment.Status,
			TrackingNumber:    optional(shipment.TrackingNumber),
			Carrier:           optional(shipment.Carrier),
			TrackingUrl:       optional(shipment.TrackingURL),
			Events:            events,
		}
	}

	return servers.TrackingSnapshot{
		OrderId:     storedUUID(snapshot.OrderID),
		OrderNumber: snapshot.OrderNumber,
		Status:      snapshot.Status,
		Shipments:   shipments,
	}
}

// storedUUID parses an identifier column that was written from a validated
// UUID; a malformed value here means corrupt storage, not caller input.
func storedUUID(s string) openapi_types.UUID {
	id, err := uuidFromStored(s)
	if err != nil {
		return openapi_types.UUID{}
	}
	return id
}

func uuidFromStored(s string) (openapi_types.UUID, error) {
	parsed, err := kernel.UUIDFromString(s)
	if err != nil {
		return openapi_types.UUID{}, err
	}
	return parsed.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ servers.ServerInterface = (*Server)(nil)
