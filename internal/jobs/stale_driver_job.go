package jobs

import (
	"context"
	"log/slog"
	"time"

	"courier/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultStaleDriverSchedule runs the release once a minute.
const DefaultStaleDriverSchedule = "@every 1m"

// StaleDriverReleaser is the command handler the job drives.
type StaleDriverReleaser interface {
	Handle(ctx context.Context, cmd commands.MarkStaleDriversOffDutyCommand) (int, error)
}

// StaleDriverJob takes on-duty drivers off duty once they stop reporting their location.
type StaleDriverJob struct {
	handler    StaleDriverReleaser
	schedule   string
	maxSilence time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleDriverJob creates the job. schedule is a standard cron spec or a descriptor
// such as "@every 1m".
func NewStaleDriverJob(
	handler StaleDriverReleaser,
	schedule string,
	maxSilence time.Duration,
	logger *slog.Logger,
) *StaleDriverJob {
	if schedule == "" {
		schedule = DefaultStaleDriverSchedule
	}
	return &StaleDriverJob{
		handler:    handler,
		schedule:   schedule,
		maxSilence: maxSilence,
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:     logger.With("component", "stale_driver_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *StaleDriverJob) Start() error {
	if _, err := commands.NewMarkStaleDriversOffDutyCommand(j.maxSilence); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Stale driver job started", "schedule", j.schedule, "max_silence", j.maxSilence)
	return nil
}

// RunOnce performs a single release pass and returns how many drivers went off duty.
func (j *StaleDriverJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewMarkStaleDriversOffDutyCommand(j.maxSilence)
	if err != nil {
		return 0, err
	}

	released, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale driver job failed", "error", err)
		return 0, err
	}
	if released > 0 {
		j.logger.InfoContext(ctx, "Drivers taken off duty", "count", released)
	}
	return released, nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *StaleDriverJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Stale driver job stopped")
}
