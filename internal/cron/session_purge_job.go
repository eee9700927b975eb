package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/hrm-backend/pkg/logger"
	"github.com/angelmondragon/hrm-backend/pkg/metrics"
)

const defaultSessionRetention = 7 * 24 * time.Hour

type SessionPurgeJobParams struct {
	Logger    *logger.Logger
	Sessions  sessionPurger
	Retention time.Duration
	Metrics   purgeRecorder
}

type purgeRecorder interface {
	AddPurgedSessions(n int64)
}

type sessionPurger interface {
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// NewSessionPurgeJob deletes sessions that expired, or were revoked, before
// now minus the retention window.
func NewSessionPurgeJob(params SessionPurgeJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	retention := params.Retention
	if retention <= 0 {
		retention = defaultSessionRetention
	}
	if params.Metrics == nil {
		params.Metrics = (*metrics.CronJobMetrics)(nil)
	}
	return &sessionPurgeJob{
		logg:      params.Logger,
		sessions:  params.Sessions,
		retention: retention,
		metrics:   params.Metrics,
		now:       time.Now,
	}, nil
}

type sessionPurgeJob struct {
	logg      *logger.Logger
	sessions  sessionPurger
	retention time.Duration
	metrics   purgeRecorder
	now       func() time.Time
}

func (j *sessionPurgeJob) Name() string { return "session-purge" }

func (j *sessionPurgeJob) Run(ctx context.Context) error {
	cutoff := j.now().UTC().Add(-j.retention)
	deleted, err := j.sessions.PurgeExpired(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("session purge: %w", err)
	}
	j.metrics.AddPurgedSessions(deleted)
	logCtx := j.logg.WithFields(ctx, map[string]any{
		"cutoff":       cutoff,
		"retention":    j.retention.String(),
		"rows_deleted": deleted,
	})
	j.logg.Info(logCtx, "session purge complete")
	return nil
}
