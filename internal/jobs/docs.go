// Package jobs provides scheduled background tasks for the courier dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// StaleDriverJob - takes on-duty drivers off duty once their last location report is older
// than the configured silence (STALE_DRIVER_AFTER, 30 minutes by default). It runs on
// STALE_DRIVER_SCHEDULE, once a minute by default. Overlapping runs are skipped.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(markStaleHandler, "@every 1m", 30*time.Minute, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. Failed job starts are reported
// to the caller.
package jobs
