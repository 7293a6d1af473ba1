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
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's aggregate tracker without a unit
// of work; query tests seed data outside any transaction.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrderQueryHandler(db)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsFullView() {
	seeded := suite.seedOrder()

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(seeded.ID().String(), view.ID)
	suite.Equal(seeded.OrderNumber(), view.OrderNumber)
	suite.Equal(seeded.CustomerID().String(), view.CustomerID)
	suite.Equal("pending", view.Status)
	suite.InDelta(85, view.Subtotal, 0.001)
	suite.InDelta(10, view.Shipping, 0.001)
	suite.InDelta(5, view.Tax, 0.001)
	suite.InDelta(100, view.Total, 0.001)
	suite.Equal("USD", view.Currency)
	suite.Equal("leave at door", view.CustomerNotes)

	suite.Equal("card", view.Payment.Method)
	suite.Equal("pending", view.Payment.Status)
	suite.InDelta(100, view.Payment.Amount, 0.001)
	suite.Zero(view.Payment.RefundedTotal)

	suite.Require().Len(view.SubOrders, 2)
	first := view.SubOrders[0]
	suite.Equal(seeded.SubOrders()[0].ID().String(), first.ID)
	suite.Equal(seeded.SubOrders()[0].VendorOrderNumber(), first.VendorOrderNumber)
	suite.Equal("pending", first.Status)
	suite.Empty(first.TrackingNumber)
	suite.Require().Len(first.Items, 2)
	suite.Equal("Desk Lamp", first.Items[0].Name)
	suite.Equal(2, first.Items[0].Quantity)
	suite.InDelta(40, first.Items[0].Total, 0.001)
	suite.Require().Len(view.SubOrders[1].Items, 1)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReflectsRefunds() {
	seeded := suite.seedOrder()

	repository := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	reloaded, err := repository.Get(context.Background(), seeded.ID())
	suite.Require().NoError(err)

	admin, err := order.NewActor(kernel.NewUUID(), order.RoleAdmin, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(reloaded.ConfirmPayment(admin, time.Now()))
	suite.Require().NoError(reloaded.RefundPayment(25, "damaged item", admin, time.Now()))
	suite.Require().NoError(repository.Update(context.Background(), reloaded))

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("partially_refunded", view.Payment.Status)
	suite.InDelta(25, view.Payment.RefundedTotal, 0.001)
}

// seedOrder persists a fresh two-vendor order and returns the aggregate.
func (suite *GetOrderQueryHandlerTestSuite) seedOrder() *order.Order {
	vendorA := kernel.NewUUID()
	vendorB := kernel.NewUUID()

	address, err := order.NewShippingAddress(
		"Jordan Reyes", "+1-555-0100", "500 Market St", "Springfield", "US", "ring twice",
	)
	suite.Require().NoError(err)

	pricing, err := order.NewPricing(85, 10, 5, 0, 100, "USD")
	suite.Require().NoError(err)

	testOrder, err := services.NewOrderFactory().CreateOrder(services.CheckoutRequest{
		CustomerID: kernel.NewUUID(),
		Items: []services.CartItem{
			{ProductID: kernel.NewUUID(), VendorID: vendorA, Name: "Desk Lamp", SKU: "LAMP-1", Quantity: 2, UnitPrice: 20},
			{ProductID: kernel.NewUUID(), VendorID: vendorA, Name: "Bulb", SKU: "BULB-9", Quantity: 1, UnitPrice: 5},
			{ProductID: kernel.NewUUID(), VendorID: vendorB, Name: "Notebook", SKU: "NB-3", Quantity: 4, UnitPrice: 10},
		},
		Address:       address,
		Pricing:       pricing,
		PaymentMethod: order.PaymentMethodCard,
		CustomerNotes: "leave at door",
		PlacedAt:      time.Now(),
	})
	suite.Require().NoError(err)

	repository := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repository.Add(context.Background(), testOrder))

	return testOrder
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
