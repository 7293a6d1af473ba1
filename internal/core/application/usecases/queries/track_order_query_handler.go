package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// trackingCacheTTL keeps snapshots fresh enough for polling customers while
// absorbing most of the read load. Updates invalidate eagerly anyway.
const trackingCacheTTL = 30 * time.Second

// TrackOrderQueryHandler serves tracking snapshots read-through a cache.
// Cache failures degrade to database reads; the cache is never a source of
// truth.
//
// Example:
//
//	handler := NewTrackOrderQueryHandler(db, cache)
//	snapshot, err := handler.Handle(ctx, query)
type TrackOrderQueryHandler struct {
	db    *gorm.DB
	cache ports.TrackingCache
}

// NewTrackOrderQueryHandler creates a handler for tracking snapshot queries.
// Requires a GORM database connection and a tracking cache.
func NewTrackOrderQueryHandler(db *gorm.DB, cache ports.TrackingCache) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db, cache: cache}
}

// TrackingCacheKey is the cache key for one order's tracking snapshot.
// Command handlers invalidate it after tracking or status updates.
func TrackingCacheKey(orderID string) string {
	return fmt.Sprintf("tracking:%s", orderID)
}

// Handle executes the query, serving from cache when possible.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	key := TrackingCacheKey(query.OrderID().String())
	if payload, ok, err := h.cache.Get(ctx, key); err == nil && ok {
		var cached TrackOrderQueryResponse
		if unmarshalErr := json.Unmarshal(payload, &cached); unmarshalErr == nil {
			return cached, nil
		}
	}

	resp, err := h.loadSnapshot(ctx, query)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
		_ = h.cache.Set(ctx, key, payload, trackingCacheTTL)
	}

	return resp, nil
}

func (h TrackOrderQueryHandler) loadSnapshot(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	var resp TrackOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, order_number, status
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(&resp.OrderID, &resp.OrderNumber, &resp.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	resp.Shipments, err = h.loadShipments(ctx, resp.OrderID)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h TrackOrderQueryHandler) loadShipments(ctx context.Context, orderID string) ([]ShipmentView, error) {
	shipments := make([]ShipmentView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vendor_order_number,
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
		var shipment ShipmentView
		if err = rows.Scan(
			&shipment.SubOrderID,
			&shipment.VendorOrderNumber,
			&shipment.Status,
			&shipment.TrackingNumber,
			&shipment.Carrier,
			&shipment.TrackingURL,
		); err != nil {
			return nil, err
		}
		shipments = append(shipments, shipment)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range shipments {
		if shipments[i].Events, err = h.loadEvents(ctx, shipments[i].SubOrderID); err != nil {
			return nil, err
		}
	}

	return shipments, nil
}

// loadEvents returns accepted events only; the stale side log is an audit
// detail not shown to customers.
func (h TrackOrderQueryHandler) loadEvents(ctx context.Context, subOrderID string) ([]TrackingEventView, error) {
	events := make([]TrackingEventView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, description, COALESCE(location, ''), occurred_at
		FROM tracking_events
		WHERE sub_order_id = ? AND NOT stale
		ORDER BY position
	`, subOrderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackingEventView
		if err = rows.Scan(&event.Status, &event.Description, &event.Location, &event.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
