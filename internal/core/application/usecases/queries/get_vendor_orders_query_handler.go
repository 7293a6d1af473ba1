package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVendorOrdersQueryHandler serves the vendor fulfillment dashboard.
type GetVendorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorOrdersQueryHandler creates a handler for vendor dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetVendorOrdersQueryHandler(db *gorm.DB) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db}
}

// Handle executes the query. Newest orders come first.
func (h GetVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVendorOrdersQuery,
) ([]VendorOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			orders.id,
			orders.order_number,
			sub_orders.id,
			sub_orders.vendor_order_number,
			sub_orders.status,
			(SELECT COUNT(*) FROM order_items WHERE order_items.sub_order_id = sub_orders.id),
			COALESCE((SELECT SUM(quantity * unit_price) FROM order_items WHERE order_items.sub_order_id = sub_orders.id), 0),
			orders.placed_at
		FROM sub_orders
		JOIN orders ON orders.id = sub_orders.order_id
		WHERE sub_orders.vendor_id = ?
	`
	args := []any{query.VendorID().String()}

	if query.Filtered() {
		sqlQuery += " AND sub_orders.status = ?"
		args = append(args, query.Status().String())
	}
	sqlQuery += " ORDER BY orders.placed_at DESC, sub_orders.position"

	views := make([]VendorOrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view VendorOrderView
		if err = rows.Scan(
			&view.OrderID,
			&view.OrderNumber,
			&view.SubOrderID,
			&view.VendorOrderNumber,
			&view.Status,
			&view.ItemCount,
			&view.ItemsTotal,
			&view.PlacedAt,
		); err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
