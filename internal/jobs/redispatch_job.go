package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RedispatchJob periodically re-offers orders stuck in Created status.
// A stale order means no driver accepted the initial fan-out: the driver pool
// may have changed since, so the sweep raises the creation event again.
type RedispatchJob struct {
	handler   commands.RedispatchStaleOrdersCommandHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewRedispatchJob creates a job that re-dispatches Created orders whose
// last update is older than the given threshold.
func NewRedispatchJob(
	handler commands.RedispatchStaleOrdersCommandHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *RedispatchJob {
	return &RedispatchJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "redispatch_job"),
	}
}

// Start begins the sweep, running every 30 seconds. The staleness threshold
// keeps the sweep self-throttling: a re-offered order gets a fresh updated_at
// and drops out of the next run.
func (j *RedispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRedispatchStaleOrdersCommand(j.olderThan)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Redispatch job misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Redispatch job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Redispatch job started (running every 30 seconds)")
	return nil
}

// Stop stops the redispatch job.
func (j *RedispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Redispatch job stopped")
}
