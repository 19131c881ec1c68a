package jobs

import (
	"context"
	"log/slog"

	"localmarket/internal/core/domain/model/activity"
	"localmarket/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ActivityFlushJob retries persistence of activity entries left in the backlog
// after a failed second-phase commit. Runs every minute; on another failure the
// drained entries go back to the head of the backlog.
type ActivityFlushJob struct {
	uowFactory ports.UnitOfWorkFactory
	backlog    ports.ActivityBacklog
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewActivityFlushJob creates a new job draining the activity backlog.
func NewActivityFlushJob(
	uowFactory ports.UnitOfWorkFactory,
	backlog ports.ActivityBacklog,
	logger *slog.Logger,
) *ActivityFlushJob {
	return &ActivityFlushJob{
		uowFactory: uowFactory,
		backlog:    backlog,
		cron:       cron.New(),
		logger:     logger.With("component", "activity_flush_job"),
	}
}

// Start begins the activity flush job to run every minute.
func (j *ActivityFlushJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.Flush(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Activity flush job started (running every minute)")
	return nil
}

// Stop stops the activity flush job.
func (j *ActivityFlushJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Activity flush job stopped")
}

// Flush drains the backlog and writes the entries in one transaction.
// On failure everything drained is requeued, keeping stream order for the
// next attempt.
func (j *ActivityFlushJob) Flush(ctx context.Context) {
	entries := j.backlog.Drain()
	if len(entries) == 0 {
		return
	}

	if err := j.store(ctx, entries); err != nil {
		j.logger.ErrorContext(ctx, "Activity flush failed, entries requeued",
			"error", err,
			"entries", len(entries),
		)
		j.backlog.Requeue(entries)
		return
	}

	j.logger.InfoContext(ctx, "Activity backlog flushed", "entries", len(entries))
}

func (j *ActivityFlushJob) store(ctx context.Context, entries []*activity.Entry) error {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ActivityRepository()
	for _, entry := range entries {
		if err := repo.Add(ctx, entry); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
