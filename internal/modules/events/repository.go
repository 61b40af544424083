package events

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aristath/catalyst-trader/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// eventColumns is the list of columns for the market_events table.
// Used to avoid SELECT * which can break when schema changes.
const eventColumns = `uuid, ticker, event_type, event_date, impact_severity,
surprise_factor, description, is_future_event, created_at`

// Repository handles market event database operations
type Repository struct {
	db  *sql.DB
	now func() time.Time
	log zerolog.Logger
}

// NewRepository creates a new market event repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		now: time.Now,
		log: log.With().Str("repo", "events").Logger(),
	}
}

// Record inserts a new market event and returns its generated UUID
func (r *Repository) Record(ctx context.Context, event domain.MarketEvent) (string, error) {
	newUUID := uuid.New().String()
	now := r.now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO market_events
		(uuid, ticker, event_type, event_date, impact_severity,
		 surprise_factor, description, is_future_event, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		newUUID,
		strings.ToUpper(strings.TrimSpace(event.Ticker)),
		string(event.EventType),
		event.EventDate.UTC().Format(time.RFC3339),
		string(event.ImpactSeverity),
		event.SurpriseFactor,
		event.Description,
		event.EventDate.After(now),
		now.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert market event: %w", err)
	}

	return newUUID, nil
}

// Upcoming returns future events for a ticker dated within daysAhead days,
// nearest first
func (r *Repository) Upcoming(ctx context.Context, ticker string, daysAhead int) ([]domain.MarketEvent, error) {
	now := r.now().UTC()
	horizon := now.AddDate(0, 0, daysAhead)

	query := "SELECT " + eventColumns + ` FROM market_events
		WHERE ticker = ? AND is_future_event = 1 AND event_date >= ? AND event_date <= ?
		ORDER BY event_date ASC`

	rows, err := r.db.QueryContext(ctx, query,
		strings.ToUpper(strings.TrimSpace(ticker)),
		now.Format(time.RFC3339),
		horizon.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming events: %w", err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// Historical returns realized events for a ticker dated within the last
// daysBack days, most recent first
func (r *Repository) Historical(ctx context.Context, ticker string, daysBack int) ([]domain.MarketEvent, error) {
	now := r.now().UTC()
	since := now.AddDate(0, 0, -daysBack)

	query := "SELECT " + eventColumns + ` FROM market_events
		WHERE ticker = ? AND event_date < ? AND event_date >= ?
		ORDER BY event_date DESC`

	rows, err := r.db.QueryContext(ctx, query,
		strings.ToUpper(strings.TrimSpace(ticker)),
		now.Format(time.RFC3339),
		since.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query historical events: %w", err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// SetSurpriseFactor records the realized surprise once an event resolves
func (r *Repository) SetSurpriseFactor(ctx context.Context, eventUUID string, surprise float64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE market_events SET surprise_factor = ? WHERE uuid = ?",
		surprise, eventUUID,
	)
	if err != nil {
		return fmt.Errorf("failed to update surprise factor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("event not found: %s", eventUUID)
	}

	return nil
}

// MarkRealizedEvents flips is_future_event for events whose date has
// passed. Returns the number of events flipped.
func (r *Repository) MarkRealizedEvents(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE market_events SET is_future_event = 0 WHERE is_future_event = 1 AND event_date < ?",
		r.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark realized events: %w", err)
	}

	return result.RowsAffected()
}

// PruneOlderThan deletes realized events older than retentionDays.
// Returns the number of events deleted.
func (r *Repository) PruneOlderThan(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := r.now().UTC().AddDate(0, 0, -retentionDays)

	result, err := r.db.ExecContext(ctx,
		"DELETE FROM market_events WHERE is_future_event = 0 AND event_date < ?",
		cutoff.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune old events: %w", err)
	}

	return result.RowsAffected()
}

func (r *Repository) scanEvents(rows *sql.Rows) ([]domain.MarketEvent, error) {
	var events []domain.MarketEvent

	for rows.Next() {
		var (
			event              domain.MarketEvent
			eventDate, created string
			eventType, sev     string
			surprise           sql.NullFloat64
			description        sql.NullString
		)

		if err := rows.Scan(
			&event.UUID, &event.Ticker, &eventType, &eventDate, &sev,
			&surprise, &description, &event.IsFutureEvent, &created,
		); err != nil {
			return nil, fmt.Errorf("failed to scan market event: %w", err)
		}

		parsedDate, err := time.Parse(time.RFC3339, eventDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event date %q: %w", eventDate, err)
		}
		event.EventDate = parsedDate

		if parsedCreated, err := time.Parse(time.RFC3339, created); err == nil {
			event.CreatedAt = parsedCreated
		}

		event.EventType = domain.EventType(eventType)
		event.ImpactSeverity = domain.ImpactSeverity(sev)
		if surprise.Valid {
			value := surprise.Float64
			event.SurpriseFactor = &value
		}
		if description.Valid {
			event.Description = description.String
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate market events: %w", err)
	}

	return events, nil
}
