package sentiment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aristath/catalyst-trader/internal/domain"
	"github.com/rs/zerolog"
)

// Repository handles sentiment score database operations
type Repository struct {
	db  *sql.DB
	now func() time.Time
	log zerolog.Logger
}

// NewRepository creates a new sentiment repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		now: time.Now,
		log: log.With().Str("repo", "sentiment").Logger(),
	}
}

// Get returns the sentiment score for a ticker, or nil when none is stored
func (r *Repository) Get(ctx context.Context, ticker string) (*domain.SentimentScore, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT ticker, overall_score, momentum, updated_at
		FROM sentiment_scores WHERE ticker = ?`,
		normalizeTicker(ticker),
	)

	var (
		score   domain.SentimentScore
		updated string
	)
	if err := row.Scan(&score.Ticker, &score.OverallScore, &score.Momentum, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No sentiment for ticker
		}
		return nil, fmt.Errorf("failed to query sentiment score: %w", err)
	}

	if parsed, err := time.Parse(time.RFC3339, updated); err == nil {
		score.UpdatedAt = parsed
	}

	return &score, nil
}

// Upsert stores or replaces the sentiment score for a ticker
func (r *Repository) Upsert(ctx context.Context, score domain.SentimentScore) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sentiment_scores (ticker, overall_score, momentum, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(ticker) DO UPDATE SET
			overall_score = excluded.overall_score,
			momentum = excluded.momentum,
			updated_at = excluded.updated_at`,
		normalizeTicker(score.Ticker),
		score.OverallScore,
		score.Momentum,
		r.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert sentiment score: %w", err)
	}

	return nil
}

// DeleteStale removes scores not refreshed within maxAge.
// Returns the number of scores removed.
func (r *Repository) DeleteStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := r.now().UTC().Add(-maxAge)

	result, err := r.db.ExecContext(ctx,
		"DELETE FROM sentiment_scores WHERE updated_at < ?",
		cutoff.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale sentiment scores: %w", err)
	}

	return result.RowsAffected()
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
