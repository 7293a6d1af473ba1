package cmd

import (
	"log/slog"

	"marketplace/internal/adapters/out/notify"
	"marketplace/internal/adapters/out/postgres"
	redisadapter "marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	trackingCache ports.TrackingCache
	publisher     ports.NotificationPublisher
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		trackingCache: redisadapter.NewTrackingCache(config.RedisAddr),
		publisher:     notify.NewLogPublisher(logger),
		logger:        logger,
	}
}

func (c *CompositionRoot) TrackingCache() ports.TrackingCache {
	return c.trackingCache
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), services.NewOrderFactory())
}

func (c *CompositionRoot) CreateUpdateSubOrderStatusCommandHandler() commands.UpdateSubOrderStatusCommandHandler {
	return commands.NewUpdateSubOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordTrackingEventCommandHandler() commands.RecordTrackingEventCommandHandler {
	return commands.NewRecordTrackingEventCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFailPaymentCommandHandler() commands.FailPaymentCommandHandler {
	return commands.NewFailPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	return commands.NewRefundPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderRefundedCommandHandler() commands.MarkOrderRefundedCommandHandler {
	return commands.NewMarkOrderRefundedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRelayNotificationsCommandHandler() commands.RelayNotificationsCommandHandler {
	return commands.NewRelayNotificationsCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVendorOrdersQueryHandler() queries.GetVendorOrdersQueryHandler {
	return queries.NewGetVendorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB, c.trackingCache)
}

func (c *CompositionRoot) CreateJobManager(relaySchedule string) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRelayNotificationsCommandHandler(), relaySchedule, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
