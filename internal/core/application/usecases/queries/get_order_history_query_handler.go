package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler serves the audit trail read model.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for audit trail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query. An unknown order yields an empty trail, not an
// error; callers that need existence checks use GetOrderQuery first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]HistoryEntryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]HistoryEntryView, 0)

	sql := `
		SELECT
			seq,
			scope,
			from_status,
			to_status,
			actor_id,
			actor_role,
			note,
			occurred_at
		FROM order_history
		WHERE order_id = ?`
	args := []any{query.OrderID().String()}

	// sub-order scopes carry the sub-order id ("subOrder:<id>"), so the
	// filter matches on the kind prefix rather than equality
	switch query.Scope() {
	case "order", "payment":
		sql += ` AND scope = ?`
		args = append(args, query.Scope())
	case "suborder":
		sql += ` AND scope LIKE 'subOrder:%'`
	}
	if from := query.From(); from != nil {
		sql += ` AND occurred_at >= ?`
		args = append(args, *from)
	}
	if to := query.To(); to != nil {
		sql += ` AND occurred_at <= ?`
		args = append(args, *to)
	}
	sql += `
		ORDER BY seq`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry HistoryEntryView
		if err = rows.Scan(
			&entry.Seq,
			&entry.Scope,
			&entry.From,
			&entry.To,
			&entry.ActorID,
			&entry.ActorRole,
			&entry.Note,
			&entry.Timestamp,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
