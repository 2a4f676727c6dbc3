// Package jobs provides scheduled background tasks for the parcel tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. DriverAssignmentJob - Runs every minute to hand sorted, unassigned parcels
// to the driver pool in round-robin order
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignDriversHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The assignment job uses the cron expression "0 * * * * *" which fires at the
// top of every minute. A manual run can also be triggered over the HTTP API,
// sharing the same command handler.
//
// # Error Handling
//
// An assignment run over an empty batch or an empty driver pool is a no-op,
// not an error. Failed runs are logged and retried on the next tick.
package jobs
