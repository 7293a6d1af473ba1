package ports

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// ErrVersionConflict is returned by OrderRepository.Update when the stored
// aggregate version no longer matches the loaded one, meaning another writer
// committed first.
var ErrVersionConflict = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
// Implementations load and store the whole aggregate (sub-orders, tracking
// timelines, payment, refunds) as one unit.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The stored
	// version must match the aggregate's loaded version; a concurrent writer
	// surfaces as ErrVersionConflict and the caller reloads and retries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderNumber retrieves an order aggregate by its human-readable
	// order number.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error)
}
