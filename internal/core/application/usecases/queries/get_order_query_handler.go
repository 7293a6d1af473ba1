package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler serves the full order read model straight from the
// database, bypassing the aggregate.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound (wrapped) when
// no order with the requested ID exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			status,
			subtotal,
			shipping,
			tax,
			discount,
			total,
			currency,
			payment_method,
			payment_status,
			payment_amount,
			payment_currency,
			COALESCE((SELECT SUM(amount) FROM refunds WHERE refunds.order_id = orders.id), 0),
			customer_notes,
			placed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.OrderNumber,
		&resp.CustomerID,
		&resp.Status,
		&resp.Subtotal,
		&resp.Shipping,
		&resp.Tax,
		&resp.Discount,
		&resp.Total,
		&resp.Currency,
		&resp.Payment.Method,
		&resp.Payment.Status,
		&resp.Payment.Amount,
		&resp.Payment.Currency,
		&resp.Payment.RefundedTotal,
		&resp.CustomerNotes,
		&resp.PlacedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.SubOrders, err = h.loadSubOrders(ctx, resp.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadSubOrders(ctx context.Context, orderID string) ([]SubOrderView, error) {
	subOrders := make([]SubOrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vendor_order_number,
			vendor_id,
			status,
			COALESCE(tracking_number, ''),
			COALESCE(carrier, ''),
			COALESCE(tracking_url, '')
		FROM sub_orders
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var subOrder SubOrderView
		if err = rows.Scan(
			&subOrder.ID,
			&subOrder.VendorOrderNumber,
			&subOrder.VendorID,
			&subOrder.Status,
			&subOrder.TrackingNumber,
			&subOrder.Carrier,
			&subOrder.TrackingURL,
		); err != nil {
			return nil, err
		}
		subOrders = append(subOrders, subOrder)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range subOrders {
		if subOrders[i].Items, err = h.loadItems(ctx, subOrders[i].ID); err != nil {
			return nil, err
		}
	}

	return subOrders, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, subOrderID string) ([]OrderItemView, error) {
	items := make([]OrderItemView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			sku,
			quantity,
			unit_price
		FROM order_items
		WHERE sub_order_id = ?
		ORDER BY position
	`, subOrderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemView
		if err = rows.Scan(
			&item.ProductID,
			&item.Name,
			&item.SKU,
			&item.Quantity,
			&item.UnitPrice,
		); err != nil {
			return nil, err
		}
		item.Total = float64(item.Quantity) * item.UnitPrice
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
