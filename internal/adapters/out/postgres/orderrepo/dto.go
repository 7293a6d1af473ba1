// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their wire names so read-model queries and audit
// rows stay human-readable. The version column backs optimistic locking.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"uniqueIndex"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`

	RecipientName string
	Contact       string
	Street        string
	City          string
	Country       string
	Instructions  string

	Subtotal float64
	Shipping float64
	Tax      float64
	Discount float64
	Total    float64
	Currency string

	PaymentMethod   string
	PaymentStatus   string
	PaymentAmount   float64
	PaymentCurrency string

	Status        string `gorm:"index"`
	CustomerNotes string
	PlacedAt      time.Time
	Version       int

	SubOrders []SubOrderDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Refunds   []RefundDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History   []HistoryEntryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// SubOrderDTO represents one vendor's sub-order row. Tracking columns are
// null until a carrier timeline is attached.
type SubOrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	VendorOrderNumber string
	VendorID          uuid.UUID `gorm:"type:uuid;index"`
	Status            string    `gorm:"index"`
	TrackingNumber    *string
	Carrier           *string
	TrackingURL       *string
	Position          int

	Items  []OrderItemDTO     `gorm:"foreignKey:SubOrderID;constraint:OnDelete:CASCADE"`
	Events []TrackingEventDTO `gorm:"foreignKey:SubOrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for sub-order entities.
func (SubOrderDTO) TableName() string {
	return "sub_orders"
}

// OrderItemDTO represents one order line with its frozen product snapshot.
type OrderItemDTO struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	SubOrderID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID     uuid.UUID `gorm:"type:uuid"`
	Name          string
	SKU           string
	SnapshotPrice float64
	Quantity      int
	UnitPrice     float64
	Position      int
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// TrackingEventDTO represents one carrier event. Stale rows are the side
// log of out-of-order and duplicate deliveries.
type TrackingEventDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	SubOrderID  uuid.UUID `gorm:"type:uuid;index"`
	Status      string
	Description string
	Location    string
	OccurredAt  time.Time
	Stale       bool
	Position    int
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// RefundDTO represents one processed refund against the order's payment.
type RefundDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Amount      float64
	Reason      string
	ProcessedAt time.Time
}

// TableName specifies the database table name for refunds.
func (RefundDTO) TableName() string {
	return "refunds"
}

// HistoryEntryDTO represents one append-only audit trail row. FromStatus is
// empty for creation entries.
type HistoryEntryDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Seq        int
	Scope      string
	FromStatus string
	ToStatus   string
	ActorID    string
	ActorRole  string
	Note       string
	OccurredAt time.Time
}

// TableName specifies the database table name for the audit trail.
func (HistoryEntryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database
// representation, including all child rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	payment := aggregate.Payment()

	dto := OrderDTO{
		ID:          orderID,
		OrderNumber: aggregate.OrderNumber(),
		CustomerID:  aggregate.CustomerID().Bytes(),

		RecipientName: aggregate.ShippingAddress().RecipientName(),
		Contact:       aggregate.ShippingAddress().Contact(),
		Street:        aggregate.ShippingAddress().Street(),
		City:          aggregate.ShippingAddress().City(),
		Country:       aggregate.ShippingAddress().Country(),
		Instructions:  aggregate.ShippingAddress().Instructions(),

		Subtotal: aggregate.Pricing().Subtotal(),
		Shipping: aggregate.Pricing().Shipping(),
		Tax:      aggregate.Pricing().Tax(),
		Discount: aggregate.Pricing().Discount(),
		Total:    aggregate.Pricing().Total(),
		Currency: aggregate.Pricing().Currency(),

		PaymentMethod:   payment.Method().String(),
		PaymentStatus:   payment.Status().String(),
		PaymentAmount:   payment.Amount().Amount(),
		PaymentCurrency: payment.Amount().Currency(),

		Status:        aggregate.Status().String(),
		CustomerNotes: aggregate.CustomerNotes(),
		PlacedAt:      aggregate.PlacedAt(),
		Version:       aggregate.Version(),
	}

	for i, subOrder := range aggregate.SubOrders() {
		dto.SubOrders = append(dto.SubOrders, subOrderFromDomain(orderID, subOrder, i))
	}
	for _, refund := range payment.Refunds() {
		dto.Refunds = append(dto.Refunds, RefundDTO{
			OrderID:     orderID,
			Amount:      refund.Amount(),
			Reason:      refund.Reason(),
			ProcessedAt: refund.ProcessedAt(),
		})
	}
	for _, entry := range aggregate.History().Entries() {
		dto.History = append(dto.History, HistoryEntryDTO{
			OrderID:    orderID,
			Seq:        entry.Seq(),
			Scope:      entry.Scope().String(),
			FromStatus: entry.From(),
			ToStatus:   entry.To(),
			ActorID:    entry.ActorID(),
			ActorRole:  entry.ActorRole().String(),
			Note:       entry.Note(),
			OccurredAt: entry.Timestamp(),
		})
	}

	return dto
}

func subOrderFromDomain(orderID uuid.UUID, subOrder *order.SubOrder, position int) SubOrderDTO {
	subOrderID := subOrder.ID().Bytes()

	dto := SubOrderDTO{
		ID:                subOrderID,
		OrderID:           orderID,
		VendorOrderNumber: subOrder.VendorOrderNumber(),
		VendorID:          subOrder.VendorID().Bytes(),
		Status:            subOrder.Status().String(),
		Position:          position,
	}

	for i, item := range subOrder.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			SubOrderID:    subOrderID,
			ProductID:     item.ProductID().Bytes(),
			Name:          item.Snapshot().Name(),
			SKU:           item.Snapshot().SKU(),
			SnapshotPrice: item.Snapshot().Price(),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice(),
			Position:      i,
		})
	}

	if tracking := subOrder.Tracking(); tracking != nil {
		trackingNumber := tracking.TrackingNumber()
		carrier := tracking.Carrier().String()
		trackingURL := tracking.TrackingURL()
		dto.TrackingNumber = &trackingNumber
		dto.Carrier = &carrier
		dto.TrackingURL = &trackingURL

		position := 0
		for _, event := range tracking.Events() {
			dto.Events = append(dto.Events, trackingEventFromDomain(subOrderID, event, false, position))
			position++
		}
		for _, event := range tracking.StaleEvents() {
			dto.Events = append(dto.Events, trackingEventFromDomain(subOrderID, event, true, position))
			position++
		}
	}

	return dto
}

func trackingEventFromDomain(subOrderID uuid.UUID, event order.TrackingEvent, stale bool, position int) TrackingEventDTO {
	return TrackingEventDTO{
		SubOrderID:  subOrderID,
		Status:      event.Status().String(),
		Description: event.Description(),
		Location:    event.Location(),
		OccurredAt:  event.Timestamp(),
		Stale:       stale,
		Position:    position,
	}
}

// toDomain converts a database DTO with preloaded children back to the
// aggregate using the domain restore constructors.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewShippingAddress(
		dto.RecipientName, dto.Contact, dto.Street, dto.City, dto.Country, dto.Instructions,
	)
	if err != nil {
		return nil, err
	}

	pricing, err := order.NewPricing(dto.Subtotal, dto.Shipping, dto.Tax, dto.Discount, dto.Total, dto.Currency)
	if err != nil {
		return nil, err
	}

	payment, err := paymentToDomain(dto)
	if err != nil {
		return nil, err
	}

	subOrders := make([]*order.SubOrder, 0, len(dto.SubOrders))
	for _, subOrderDTO := range dto.SubOrders {
		subOrder, subErr := subOrderToDomain(subOrderDTO)
		if subErr != nil {
			return nil, subErr
		}
		subOrders = append(subOrders, subOrder)
	}

	history, err := historyToDomain(dto.History)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customerID,
		address,
		pricing,
		payment,
		subOrders,
		history,
		dto.CustomerNotes,
		dto.PlacedAt,
		dto.Version,
	)
}

func paymentToDomain(dto OrderDTO) (*order.Payment, error) {
	method, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	status, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.PaymentAmount, dto.PaymentCurrency)
	if err != nil {
		return nil, err
	}

	refunds := make([]order.Refund, 0, len(dto.Refunds))
	for _, refundDTO := range dto.Refunds {
		refunds = append(refunds, order.RestoreRefund(refundDTO.Amount, refundDTO.Reason, refundDTO.ProcessedAt))
	}

	return order.RestorePayment(method, amount, status, refunds)
}

func subOrderToDomain(dto SubOrderDTO) (*order.SubOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	tracking, err := trackingToDomain(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreSubOrder(id, dto.VendorOrderNumber, vendorID, items, status, tracking)
}

func itemToDomain(dto OrderItemDTO) (order.OrderItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.OrderItem{}, err
	}

	snapshot, err := order.NewProductSnapshot(dto.Name, dto.SKU, dto.SnapshotPrice)
	if err != nil {
		return order.OrderItem{}, err
	}

	return order.NewOrderItem(productID, snapshot, dto.Quantity, dto.UnitPrice)
}

func trackingToDomain(dto SubOrderDTO) (*order.TrackingTimeline, error) {
	if dto.TrackingNumber == nil {
		return nil, nil
	}

	carrier, err := order.CarrierFromString(derefString(dto.Carrier))
	if err != nil {
		return nil, err
	}

	var accepted, stale []order.TrackingEvent
	for _, eventDTO := range dto.Events {
		status, statusErr := order.TrackingStatusFromString(eventDTO.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		event, eventErr := order.NewTrackingEvent(status, eventDTO.Description, eventDTO.Location, eventDTO.OccurredAt)
		if eventErr != nil {
			return nil, eventErr
		}
		if eventDTO.Stale {
			stale = append(stale, event)
		} else {
			accepted = append(accepted, event)
		}
	}

	return order.RestoreTrackingTimeline(*dto.TrackingNumber, carrier, derefString(dto.TrackingURL), accepted, stale)
}

func historyToDomain(dtos []HistoryEntryDTO) (*order.History, error) {
	entries := make([]order.HistoryEntry, 0, len(dtos))
	for _, entryDTO := range dtos {
		scope, err := order.ScopeFromString(entryDTO.Scope)
		if err != nil {
			return nil, err
		}
		role, err := order.RoleFromString(entryDTO.ActorRole)
		if err != nil {
			return nil, err
		}

		entries = append(entries, order.RestoreHistoryEntry(
			entryDTO.Seq,
			entryDTO.OccurredAt,
			scope,
			entryDTO.FromStatus,
			entryDTO.ToStatus,
			entryDTO.ActorID,
			role,
			entryDTO.Note,
		))
	}

	return order.RestoreHistory(entries), nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
