package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence
// of the full aggregate: sub-orders, items, tracking, refunds, history.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.SubOrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.TrackingEventDTO{},
		&orderrepo.RefundDTO{},
		&orderrepo.HistoryEntryDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertTableCount("orders", 1)
	suite.assertTableCount("sub_orders", 2)
	suite.assertTableCount("order_items", 3)
	// One creation entry per scope: order, two sub-orders, payment
	suite.assertTableCount("order_history", 4)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(testOrder.ID()))
	suite.Equal(testOrder.OrderNumber(), restored.OrderNumber())
	suite.Equal(order.Pending, restored.Status())
	suite.Equal(1, restored.Version())
	suite.Len(restored.SubOrders(), 2)
	suite.Len(restored.History().Entries(), 4)
	suite.InDelta(testOrder.Pricing().Total(), restored.Pricing().Total(), 0.001)
	suite.Equal(testOrder.Payment().Status(), restored.Payment().Status())

	suite.Len(restored.SubOrders()[0].Items(), 2)
	suite.Len(restored.SubOrders()[1].Items(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByOrderNumber() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.GetByOrderNumber(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(testOrder.ID()))

	_, err = suite.repository.GetByOrderNumber(ctx, "ORD-0000000000")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	subOrder := testOrder.SubOrders()[0]
	vendorID := subOrder.VendorID()
	vendor, err := order.NewActor(kernel.NewUUID(), order.RoleVendor, &vendorID)
	suite.Require().NoError(err)
	suite.Require().NoError(
		testOrder.UpdateSubOrderStatus(subOrder.ID(), order.Confirmed, vendor, "in stock", time.Now()),
	)

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(2, restored.Version())

	restoredSub, err := restored.SubOrder(subOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, restoredSub.Status())
	suite.Greater(len(restored.History().Entries()), 4)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTracking() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	subOrder := testOrder.SubOrders()[0]
	event, err := order.NewTrackingEvent(
		order.TrackingInTransit, "Departed facility", "Memphis, TN", time.Now().Add(-time.Hour),
	)
	suite.Require().NoError(err)

	accepted, err := testOrder.RecordTrackingEvent(
		subOrder.ID(), "1Z999AA10123456784", order.CarrierUPS, "https://ups.example/track", event, time.Now(),
	)
	suite.Require().NoError(err)
	suite.True(accepted)

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	restoredSub, err := restored.SubOrder(subOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(restoredSub.Tracking())
	suite.Equal("1Z999AA10123456784", restoredSub.Tracking().TrackingNumber())
	suite.Equal(order.CarrierUPS, restoredSub.Tracking().Carrier())
	suite.Len(restoredSub.Tracking().Events(), 1)
	suite.Empty(restoredSub.Tracking().StaleEvents())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_VersionConflict() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	subOrderID := first.SubOrders()[0].ID()
	vendorID := first.SubOrders()[0].VendorID()
	vendor, err := order.NewActor(kernel.NewUUID(), order.RoleVendor, &vendorID)
	suite.Require().NoError(err)

	suite.Require().NoError(
		first.UpdateSubOrderStatus(subOrderID, order.Confirmed, vendor, "", time.Now()),
	)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(
		second.UpdateSubOrderStatus(subOrderID, order.Confirmed, vendor, "", time.Now()),
	)
	err = suite.repository.Update(ctx, second)

	suite.Require().Error(err)
	suite.ErrorIs(err, ports.ErrVersionConflict)
}

// createTestOrder builds a two-vendor order through the order factory so the
// aggregate carries realistic sub-order numbers and creation history.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	vendorA := kernel.NewUUID()
	vendorB := kernel.NewUUID()

	address, err := order.NewShippingAddress(
		"Jordan Reyes", "+1-555-0100", "500 Market St", "Springfield", "US", "ring twice",
	)
	suite.Require().NoError(err)

	pricing, err := order.NewPricing(85, 10, 5, 0, 100, "USD")
	suite.Require().NoError(err)

	method, err := order.PaymentMethodFromString("card")
	suite.Require().NoError(err)

	factory := services.NewOrderFactory()
	testOrder, err := factory.CreateOrder(services.CheckoutRequest{
		CustomerID: kernel.NewUUID(),
		Items: []services.CartItem{
			{ProductID: kernel.NewUUID(), VendorID: vendorA, Name: "Desk Lamp", SKU: "LAMP-1", Quantity: 2, UnitPrice: 20},
			{ProductID: kernel.NewUUID(), VendorID: vendorA, Name: "Bulb", SKU: "BULB-9", Quantity: 1, UnitPrice: 5},
			{ProductID: kernel.NewUUID(), VendorID: vendorB, Name: "Notebook", SKU: "NB-3", Quantity: 4, UnitPrice: 10},
		},
		Address:       address,
		Pricing:       pricing,
		PaymentMethod: method,
		CustomerNotes: "leave at door",
		PlacedAt:      time.Now(),
	})
	suite.Require().NoError(err)

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertTableCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
