package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/vendordesk/vendordesk/internal/jobs"
)

// SessionPurger deletes session records that expired before a cutoff.
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}

// SessionsPurgeJob removes expired auth_sessions rows. Redis-backed session
// state expires on its own TTL.
type SessionsPurgeJob struct {
	Purger  SessionPurger
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
	clock   func() time.Time
}

// NewSessionsPurgeJob initialises the purge handler.
func NewSessionsPurgeJob(purger SessionPurger, logger *slog.Logger, metrics *jobmetrics.Metrics) *SessionsPurgeJob {
	return &SessionsPurgeJob{
		Purger:  purger,
		Logger:  logger,
		Metrics: metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle executes a purge run.
func (j *SessionsPurgeJob) Handle(ctx context.Context, t *asynq.Task) (resultErr error) {
	if j == nil || j.Purger == nil {
		return errors.New("sessions purge: handler not configured")
	}
	var payload SessionsPurgePayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("sessions purge: decode payload: %v: %w", err, asynq.SkipRetry)
		}
	}
	if payload.GraceSeconds < 0 {
		payload.GraceSeconds = 0
	}

	tracker := j.Metrics.Track(TaskSessionsPurge)
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	cutoff := j.clock().Add(-time.Duration(payload.GraceSeconds) * time.Second)
	logger := j.logger().With(slog.Time("cutoff", cutoff))

	removed, err := j.Purger.PurgeExpiredSessions(ctx, cutoff)
	if err != nil {
		logger.Error("purge expired sessions", slog.Any("error", err))
		return err
	}
	j.Metrics.AddAffected(TaskSessionsPurge, removed)
	logger.Info("purged expired sessions", slog.Int64("removed", removed))
	return nil
}

func (j *SessionsPurgeJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
