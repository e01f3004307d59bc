package jobs

import (
	"context"
	"log/slog"
	"time"

	"paquexpress/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob closes agent sessions that stayed open past their TTL.
// Runs hourly; each run closes every session older than the configured TTL.
type SessionCleanupJob struct {
	handler    commands.CloseStaleSessionsCommandHandler
	sessionTTL time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewSessionCleanupJob creates a new job for closing stale sessions.
// The TTL comes from service configuration.
func NewSessionCleanupJob(
	handler commands.CloseStaleSessionsCommandHandler,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *SessionCleanupJob {
	return &SessionCleanupJob{
		handler:    handler,
		sessionTTL: sessionTTL,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the session cleanup job to run at the top of every hour.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCloseStaleSessionsCommand(j.sessionTTL)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job misconfigured", "error", err)
			return
		}

		closed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", err)
			return
		}

		if closed > 0 {
			j.logger.InfoContext(ctx, "Closed stale sessions", "count", closed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running hourly)")
	return nil
}

// Stop stops the session cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
