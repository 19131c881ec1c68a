package jobs

import (
	"fmt"
	"log/slog"

	"localmarket/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	activityFlushJob *ActivityFlushJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	backlog ports.ActivityBacklog,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		activityFlushJob: NewActivityFlushJob(uowFactory, backlog, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.activityFlushJob.Start(); err != nil {
		return fmt.Errorf("failed to start activity flush job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.activityFlushJob.Stop()
}
