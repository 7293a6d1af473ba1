package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// relayBatchSize bounds one drain pass. A busy pass leaves the remainder
// for the next tick rather than holding the transaction open.
const relayBatchSize = 100

// NotificationRelayJob periodically drains the notification outbox and
// delivers pending messages to the configured publisher.
type NotificationRelayJob struct {
	handler  commands.RelayNotificationsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationRelayJob creates a relay job running on the given cron
// schedule (six-field, with seconds).
func NewNotificationRelayJob(
	handler commands.RelayNotificationsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_relay_job"),
	}
}

// Start begins the relay job on its schedule.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRelayNotificationsCommand(relayBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Notification relay job misconfigured", "error", cmdErr)
			return
		}

		delivered, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Notification relay job failed", "error", handleErr, "delivered", delivered)
			return
		}
		if delivered > 0 {
			j.logger.InfoContext(ctx, "Notifications relayed", "delivered", delivered)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started", "schedule", j.schedule)
	return nil
}

// Stop stops the relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
