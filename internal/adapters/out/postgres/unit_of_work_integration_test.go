package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the GORM unit of work commits
// the order aggregate and its outbox messages atomically against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgresadapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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
		&outboxrepo.MessageDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE outbox_messages").Error)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndOutbox() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, []ports.OutboxMessage{
		{
			ID:        kernel.NewUUID(),
			OrderID:   testOrder.ID(),
			EventType: "order.status_changed",
			Payload:   []byte(`{"to":"pending"}`),
			CreatedAt: time.Now(),
		},
	}))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertTableCount("orders", 1)
	suite.assertTableCount("outbox_messages", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, []ports.OutboxMessage{
		{
			ID:        kernel.NewUUID(),
			OrderID:   testOrder.ID(),
			EventType: "order.status_changed",
			Payload:   []byte(`{}`),
			CreatedAt: time.Now(),
		},
	}))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertTableCount("orders", 0)
	suite.assertTableCount("outbox_messages", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOutbox_UnpublishedAndMarkPublished() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	first := ports.OutboxMessage{
		ID:        kernel.NewUUID(),
		OrderID:   testOrder.ID(),
		EventType: "order.status_changed",
		Payload:   []byte(`{"to":"pending"}`),
		CreatedAt: time.Now().Add(-time.Minute),
	}
	second := ports.OutboxMessage{
		ID:        kernel.NewUUID(),
		OrderID:   testOrder.ID(),
		EventType: "suborder.status_changed",
		Payload:   []byte(`{"to":"confirmed"}`),
		CreatedAt: time.Now(),
	}
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, []ports.OutboxMessage{first, second}))
	suite.Require().NoError(uow.Commit(ctx))

	// A fresh unit of work drains the batch oldest first
	relay := suite.factory.Create()
	suite.Require().NoError(relay.Begin(ctx))

	pending, err := relay.OutboxRepository().GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].ID.IsEqual(first.ID))

	err = relay.OutboxRepository().MarkPublished(ctx, []kernel.UUID{first.ID}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(relay.Commit(ctx))

	check := suite.factory.Create()
	suite.Require().NoError(check.Begin(ctx))
	defer func() { _ = check.Rollback(ctx) }()

	remaining, err := check.OutboxRepository().GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.True(remaining[0].ID.IsEqual(second.ID))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	address, err := order.NewShippingAddress(
		"Jordan Reyes", "+1-555-0100", "500 Market St", "Springfield", "US", "",
	)
	suite.Require().NoError(err)

	pricing, err := order.NewPricing(40, 5, 0, 0, 45, "USD")
	suite.Require().NoError(err)

	method, err := order.PaymentMethodFromString("card")
	suite.Require().NoError(err)

	factory := services.NewOrderFactory()
	testOrder, err := factory.CreateOrder(services.CheckoutRequest{
		CustomerID: kernel.NewUUID(),
		Items: []services.CartItem{
			{ProductID: kernel.NewUUID(), VendorID: kernel.NewUUID(), Name: "Desk Lamp", SKU: "LAMP-1", Quantity: 2, UnitPrice: 20},
		},
		Address:       address,
		Pricing:       pricing,
		PaymentMethod: method,
		PlacedAt:      time.Now(),
	})
	suite.Require().NoError(err)

	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) assertTableCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
