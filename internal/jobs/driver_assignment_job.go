package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DriverAssignmentJob manages the scheduled assignment of drivers to parcels.
// Runs every minute to hand sorted, unassigned parcels to the driver pool in
// round-robin order.
type DriverAssignmentJob struct {
	handler commands.AssignDriversCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverAssignmentJob creates a new job for assigning drivers.
// Uses AssignDriversCommandHandler to process assignment batches every minute.
func NewDriverAssignmentJob(handler commands.AssignDriversCommandHandler, logger *slog.Logger) *DriverAssignmentJob {
	return &DriverAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "driver_assignment_job"),
	}
}

// Start begins the driver assignment job to run every minute.
func (j *DriverAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignDriversCommand()

		assigned, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Driver assignment job failed", "error", handleErr)
			return
		}

		if assigned > 0 {
			j.logger.InfoContext(ctx, "Assigned parcels to drivers", "count", assigned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver assignment job started (running every minute)")
	return nil
}

// Stop stops the driver assignment job.
func (j *DriverAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver assignment job stopped")
}
