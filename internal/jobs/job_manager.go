package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager owns the cron-driven background work of the service.
type JobManager struct {
	staleDriverJob *StaleDriverJob
}

// NewJobManager schedules the stale driver sweep; nothing runs until StartAll.
func NewJobManager(
	releaseStaleDrivers StaleDriverReleaser,
	staleDriverSchedule string,
	staleDriverAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleDriverJob: NewStaleDriverJob(releaseStaleDrivers, staleDriverSchedule, staleDriverAfter, logger),
	}
}

// StartAll registers and starts every job.
func (jm *JobManager) StartAll() error {
	if err := jm.staleDriverJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale driver job: %w", err)
	}
	return nil
}

// StopAll blocks until running executions have finished.
func (jm *JobManager) StopAll() {
	jm.staleDriverJob.Stop()
}
