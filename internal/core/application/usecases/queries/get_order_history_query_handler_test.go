package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderHistoryQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	handler    queries.GetOrderHistoryQueryHandler
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.SubOrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.TrackingEventDTO{},
		&orderrepo.RefundDTO{},
		&orderrepo.HistoryEntryDTO{},
	))

	suite.repository = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.handler = queries.NewGetOrderHistoryQueryHandler(db)
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsEmptyTrail() {
	query, err := queries.NewGetOrderHistoryQuery(kernel.NewUUID(), "", nil, nil)
	suite.Require().NoError(err)

	entries, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TestHandle_ReturnsTrailInSequence() {
	seeded := suite.seedOrder()

	reloaded, err := suite.repository.Get(context.Background(), seeded.ID())
	suite.Require().NoError(err)

	subOrder := reloaded.SubOrders()[0]
	vendorID := subOrder.VendorID()
	vendor, err := order.NewActor(kernel.NewUUID(), order.RoleVendor, &vendorID)
	suite.Require().NoError(err)
	suite.Require().NoError(
		reloaded.UpdateSubOrderStatus(subOrder.ID(), order.Confirmed, vendor, "in stock", time.Now()),
	)
	suite.Require().NoError(suite.repository.Update(context.Background(), reloaded))

	query, err := queries.NewGetOrderHistoryQuery(seeded.ID(), "", nil, nil)
	suite.Require().NoError(err)

	entries, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	// three creation entries, then the sub-order and derived order transitions
	suite.Require().Len(entries, 5)
	for i, entry := range entries {
		suite.Equal(i+1, entry.Seq)
	}

	suite.Equal("order", entries[0].Scope)
	suite.Equal("customer", entries[0].ActorRole)

	subOrderEntry := entries[3]
	suite.Equal("pending", subOrderEntry.From)
	suite.Equal("confirmed", subOrderEntry.To)
	suite.Equal("vendor", subOrderEntry.ActorRole)
	suite.Equal("in stock", subOrderEntry.Note)

	orderEntry := entries[4]
	suite.Equal("order", orderEntry.Scope)
	suite.Equal("confirmed", orderEntry.To)
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TestHandle_ScopeFilter() {
	seeded := suite.seedOrder()
	suite.confirmFirstSubOrder(seeded, time.Now())

	cases := []struct {
		scope string
		count int
	}{
		{"order", 2},    // creation plus the derived transition
		{"suborder", 2}, // creation plus the vendor transition
		{"payment", 1},  // creation only
	}
	for _, tc := range cases {
		query, err := queries.NewGetOrderHistoryQuery(seeded.ID(), tc.scope, nil, nil)
		suite.Require().NoError(err)

		entries, err := suite.handler.Handle(context.Background(), query)
		suite.Require().NoError(err)
		suite.Require().Len(entries, tc.count, tc.scope)
		for _, entry := range entries {
			scope, err := order.ScopeFromString(entry.Scope)
			suite.Require().NoError(err)
			switch tc.scope {
			case "order":
				suite.Equal(order.ScopeOrder, scope.Kind())
			case "suborder":
				suite.Equal(order.ScopeSubOrder, scope.Kind())
			case "payment":
				suite.Equal(order.ScopePayment, scope.Kind())
			}
		}
	}
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TestHandle_TimeWindowFilter() {
	placedAt := time.Now().Add(-2 * time.Hour).Truncate(time.Second)
	confirmedAt := placedAt.Add(time.Hour)
	cut := placedAt.Add(30 * time.Minute)

	seeded := suite.seedOrderAt(placedAt)
	suite.confirmFirstSubOrder(seeded, confirmedAt)

	query, err := queries.NewGetOrderHistoryQuery(seeded.ID(), "", &cut, nil)
	suite.Require().NoError(err)
	entries, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("confirmed", entries[0].To)

	query, err = queries.NewGetOrderHistoryQuery(seeded.ID(), "", nil, &cut)
	suite.Require().NoError(err)
	entries, err = suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)

	query, err = queries.NewGetOrderHistoryQuery(seeded.ID(), "", &placedAt, &confirmedAt)
	suite.Require().NoError(err)
	entries, err = suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(entries, 5)
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TestHandle_ScopeAndWindowCombined() {
	placedAt := time.Now().Add(-2 * time.Hour).Truncate(time.Second)
	cut := placedAt.Add(30 * time.Minute)

	seeded := suite.seedOrderAt(placedAt)
	suite.confirmFirstSubOrder(seeded, placedAt.Add(time.Hour))

	query, err := queries.NewGetOrderHistoryQuery(seeded.ID(), "suborder", &cut, nil)
	suite.Require().NoError(err)

	entries, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("pending", entries[0].From)
	suite.Equal("confirmed", entries[0].To)
}

// confirmFirstSubOrder reloads the order and confirms its first sub-order at
// the given time, writing two history entries.
func (suite *GetOrderHistoryQueryHandlerTestSuite) confirmFirstSubOrder(seeded *order.Order, at time.Time) {
	reloaded, err := suite.repository.Get(context.Background(), seeded.ID())
	suite.Require().NoError(err)

	subOrder := reloaded.SubOrders()[0]
	vendorID := subOrder.VendorID()
	vendor, err := order.NewActor(kernel.NewUUID(), order.RoleVendor, &vendorID)
	suite.Require().NoError(err)
	suite.Require().NoError(
		reloaded.UpdateSubOrderStatus(subOrder.ID(), order.Confirmed, vendor, "", at),
	)
	suite.Require().NoError(suite.repository.Update(context.Background(), reloaded))
}

// seedOrder persists a single-vendor order so creation writes exactly three
// history entries: order, sub-order, payment.
func (suite *GetOrderHistoryQueryHandlerTestSuite) seedOrder() *order.Order {
	return suite.seedOrderAt(time.Now())
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) seedOrderAt(placedAt time.Time) *order.Order {
	vendorID := kernel.NewUUID()

	address, err := order.NewShippingAddress(
		"Jordan Reyes", "+1-555-0100", "500 Market St", "Springfield", "US", "",
	)
	suite.Require().NoError(err)

	pricing, err := order.NewPricing(40, 5, 0, 0, 45, "USD")
	suite.Require().NoError(err)

	testOrder, err := services.NewOrderFactory().CreateOrder(services.CheckoutRequest{
		CustomerID: kernel.NewUUID(),
		Items: []services.CartItem{
			{ProductID: kernel.NewUUID(), VendorID: vendorID, Name: "Notebook", SKU: "NB-3", Quantity: 4, UnitPrice: 10},
		},
		Address:       address,
		Pricing:       pricing,
		PaymentMethod: order.PaymentMethodCard,
		PlacedAt:      placedAt,
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(context.Background(), testOrder))
	return testOrder
}

func TestGetOrderHistoryQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(GetOrderHistoryQueryHandlerTestSuite))
}
