// Package worker provides background job processing for Plateful.
package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/plateful/plateful/internal/events"
	"github.com/plateful/plateful/internal/summary"
	"github.com/plateful/plateful/internal/user"
)

// SnapshotConfig holds configuration for the snapshot job.
type SnapshotConfig struct {
	// MaxRetries is the maximum number of retry attempts per event.
	// Default: 3
	MaxRetries uint64

	// InitialInterval is the initial retry backoff interval.
	// Default: 500ms
	InitialInterval time.Duration

	// MaxInterval is the maximum retry backoff interval.
	// Default: 10 seconds
	MaxInterval time.Duration
}

// DefaultSnapshotConfig returns the default snapshot job configuration.
func DefaultSnapshotConfig() SnapshotConfig {
	return SnapshotConfig{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     10 * time.Second,
	}
}

// SnapshotMetrics tracks snapshot job statistics.
type SnapshotMetrics struct {
	Processed int64
	Failed    int64
}

// SnapshotJob recomputes daily summary snapshots in response to
// meal-changed events.
type SnapshotJob struct {
	config    SnapshotConfig
	summaries *summary.Service
	users     *user.Service
	logger    zerolog.Logger

	processed atomic.Int64
	failed    atomic.Int64
}

// SnapshotJobConfig holds configuration for creating a SnapshotJob.
type SnapshotJobConfig struct {
	Config    SnapshotConfig
	Summaries *summary.Service

	// Users resolves the profile timezone when an event omits one.
	// Optional; nil falls back to UTC.
	Users *user.Service

	Logger zerolog.Logger
}

// NewSnapshotJob creates a new snapshot job processor.
func NewSnapshotJob(cfg SnapshotJobConfig) *SnapshotJob {
	config := cfg.Config
	if config.MaxRetries == 0 {
		config.MaxRetries = DefaultSnapshotConfig().MaxRetries
	}
	if config.InitialInterval == 0 {
		config.InitialInterval = DefaultSnapshotConfig().InitialInterval
	}
	if config.MaxInterval == 0 {
		config.MaxInterval = DefaultSnapshotConfig().MaxInterval
	}

	return &SnapshotJob{
		config:    config,
		summaries: cfg.Summaries,
		users:     cfg.Users,
		logger:    cfg.Logger,
	}
}

// Process recomputes the snapshot named by the event, retrying transient
// failures with exponential backoff.
func (j *SnapshotJob) Process(ctx context.Context, event events.MealChangedEvent) error {
	if event.UserID == "" {
		return fmt.Errorf("event missing user_id")
	}

	loc, err := j.resolveLocation(ctx, event)
	if err != nil {
		return err
	}

	day, err := time.ParseInLocation(events.DayFormat, event.Day, loc)
	if err != nil {
		return fmt.Errorf("parsing event day %q: %w", event.Day, err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = j.config.InitialInterval
	bo.MaxInterval = j.config.MaxInterval
	bo.MaxElapsedTime = 0

	operation := func() error {
		_, err := j.summaries.Recompute(ctx, event.UserID, day)
		return err
	}

	err = backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(bo, j.config.MaxRetries), ctx))
	if err != nil {
		j.failed.Add(1)
		return fmt.Errorf("recomputing snapshot: %w", err)
	}

	j.processed.Add(1)
	j.logger.Debug().
		Str("user_id", event.UserID).
		Str("day", event.Day).
		Str("timezone", loc.String()).
		Msg("snapshot recomputed")

	return nil
}

// Metrics returns a copy of the job's counters.
func (j *SnapshotJob) Metrics() SnapshotMetrics {
	return SnapshotMetrics{
		Processed: j.processed.Load(),
		Failed:    j.failed.Load(),
	}
}

// resolveLocation picks the timezone to interpret the event day in: the
// event's own zone first, the user's profile zone second, UTC last.
func (j *SnapshotJob) resolveLocation(ctx context.Context, event events.MealChangedEvent) (*time.Location, error) {
	if event.Timezone != "" {
		loc, err := time.LoadLocation(event.Timezone)
		if err == nil {
			return loc, nil
		}
		j.logger.Warn().
			Str("timezone", event.Timezone).
			Msg("event carries unknown timezone, falling back to profile")
	}

	if j.users != nil {
		u, err := j.users.GetUser(ctx, event.UserID)
		if err != nil {
			return nil, fmt.Errorf("resolving user timezone: %w", err)
		}
		return u.Location(), nil
	}

	return time.UTC, nil
}
