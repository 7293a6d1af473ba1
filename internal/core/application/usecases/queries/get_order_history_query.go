package queries

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves the append-only audit trail of one order:
// every accepted transition across the order, sub-order, and payment scopes
// in chronological order. The trail can be narrowed to one scope kind and
// to a time window; an empty scope and nil bounds mean no filtering.
type GetOrderHistoryQuery struct {
	orderID kernel.UUID
	scope   string
	from    *time.Time
	to      *time.Time

	guard guard.ConstructorGuard
}

// historyScopeFilters are the accepted values for the scope filter. The
// empty string disables scope filtering.
var historyScopeFilters = map[string]struct{}{
	"":         {},
	"order":    {},
	"suborder": {},
	"payment":  {},
}

// NewGetOrderHistoryQuery creates a query for an order's audit trail.
// Scope must be "order", "suborder", "payment", or empty; from and to, when
// both given, must form a non-inverted window.
func NewGetOrderHistoryQuery(orderID kernel.UUID, scope string, from, to *time.Time) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	if _, ok := historyScopeFilters[scope]; !ok {
		return GetOrderHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause("scope",
			fmt.Errorf("unknown scope filter %q", scope))
	}
	if from != nil && to != nil && from.After(*to) {
		return GetOrderHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause("from",
			errors.New("time window is inverted"))
	}

	return GetOrderHistoryQuery{
		orderID: orderID,
		scope:   scope,
		from:    from,
		to:      to,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Scope returns the scope filter, or the empty string when unfiltered.
func (q GetOrderHistoryQuery) Scope() string {
	return q.scope
}

// From returns the inclusive lower time bound, or nil when unbounded.
func (q GetOrderHistoryQuery) From() *time.Time {
	return q.from
}

// To returns the inclusive upper time bound, or nil when unbounded.
func (q GetOrderHistoryQuery) To() *time.Time {
	return q.to
}

// HistoryEntryView is one audit trail row. From is empty for creation
// entries.
type HistoryEntryView struct {
	Seq       int
	Scope     string
	From      string
	To        string
	ActorID   string
	ActorRole string
	Note      string
	Timestamp time.Time
}
