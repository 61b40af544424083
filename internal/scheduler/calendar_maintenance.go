package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// EventMaintainer is the slice of the events repository the maintenance
// job needs.
type EventMaintainer interface {
	MarkRealizedEvents(ctx context.Context) (int64, error)
	PruneOlderThan(ctx context.Context, retentionDays int) (int64, error)
}

// SentimentMaintainer removes sentiment scores that were never refreshed.
type SentimentMaintainer interface {
	DeleteStale(ctx context.Context, maxAge time.Duration) (int64, error)
}

// Calendar hygiene defaults: realized events are kept for about a year of
// retrospective IV-crush queries; sentiment older than a week says nothing
// about today's market.
const (
	eventRetentionDays = 365
	sentimentMaxAge    = 7 * 24 * time.Hour
	maintenanceTimeout = 30 * time.Second
)

// CalendarMaintenanceJob keeps the event calendar and sentiment store
// tidy: flips past events to realized, prunes old realized events, and
// drops stale sentiment.
type CalendarMaintenanceJob struct {
	events    EventMaintainer
	sentiment SentimentMaintainer
	log       zerolog.Logger
}

// NewCalendarMaintenanceJob creates the maintenance job
func NewCalendarMaintenanceJob(events EventMaintainer, sentiment SentimentMaintainer, log zerolog.Logger) *CalendarMaintenanceJob {
	return &CalendarMaintenanceJob{
		events:    events,
		sentiment: sentiment,
		log:       log.With().Str("job", "calendar_maintenance").Logger(),
	}
}

// Name returns the job identifier
func (j *CalendarMaintenanceJob) Name() string {
	return "calendar_maintenance"
}

// Run performs one maintenance pass
func (j *CalendarMaintenanceJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceTimeout)
	defer cancel()

	flipped, err := j.events.MarkRealizedEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark realized events: %w", err)
	}

	pruned, err := j.events.PruneOlderThan(ctx, eventRetentionDays)
	if err != nil {
		return fmt.Errorf("failed to prune old events: %w", err)
	}

	stale, err := j.sentiment.DeleteStale(ctx, sentimentMaxAge)
	if err != nil {
		return fmt.Errorf("failed to delete stale sentiment: %w", err)
	}

	j.log.Info().
		Int64("events_realized", flipped).
		Int64("events_pruned", pruned).
		Int64("sentiment_removed", stale).
		Msg("Calendar maintenance complete")

	return nil
}
