package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order aggregate with all its child rows.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order aggregate. The update is guarded by the
// version the aggregate was loaded with; a concurrent writer bumping the
// version first makes this call return ports.ErrVersionConflict. Child rows
// are replaced wholesale since the aggregate owns them.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	newVersion := loadedVersion + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Updates(map[string]any{
			"payment_status": dto.PaymentStatus,
			"status":         dto.Status,
			"version":        newVersion,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrVersionConflict
	}

	if err := r.replaceChildren(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// replaceChildren rewrites the aggregate's child rows. Deleting sub-orders
// cascades to their items and tracking events at the database level.
func (r *GormOrderRepository) replaceChildren(ctx context.Context, dto OrderDTO) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("order_id = ?", dto.ID).Delete(&SubOrderDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("order_id = ?", dto.ID).Delete(&RefundDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("order_id = ?", dto.ID).Delete(&HistoryEntryDTO{}).Error; err != nil {
		return err
	}

	for i := range dto.SubOrders {
		if err := db.Create(&dto.SubOrders[i]).Error; err != nil {
			return err
		}
	}
	if len(dto.Refunds) > 0 {
		if err := db.Create(&dto.Refunds).Error; err != nil {
			return err
		}
	}
	if len(dto.History) > 0 {
		if err := db.Create(&dto.History).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order aggregate by ID with all child rows preloaded.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.getBy(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByOrderNumber retrieves an order aggregate by its order number.
func (r *GormOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	return r.getBy(ctx, "order_number = ?", orderNumber, orderNumber)
}

func (r *GormOrderRepository) getBy(ctx context.Context, cond string, arg any, ident string) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("SubOrders", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("SubOrders.Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("SubOrders.Events", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Refunds", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, cond, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", ident)
		}
		return nil, err
	}

	return toDomain(dto)
}
