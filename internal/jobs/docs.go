// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. NotificationRelayJob - Drains the outbox and delivers status-change
// notifications to the configured publisher.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(relayHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay schedule is configurable (OUTBOX_RELAY_SCHEDULE); the default
// "*/5 * * * * *" runs every five seconds, which keeps notification latency
// low without hammering the outbox table.
//
// # Error Handling
//
// An empty outbox is the normal case and is not logged. Publish failures are
// logged and retried on the next pass; delivery is at-least-once.
package jobs
