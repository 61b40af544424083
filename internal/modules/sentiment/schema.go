package sentiment

import "database/sql"

// SentimentSchema defines the sentiment score table in market.db
const SentimentSchema = `
CREATE TABLE IF NOT EXISTS sentiment_scores (
    ticker TEXT PRIMARY KEY,
    overall_score REAL NOT NULL,
    momentum REAL NOT NULL DEFAULT 0,
    updated_at TEXT NOT NULL
);
`

// InitSchema ensures the sentiment_scores table exists
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(SentimentSchema)
	return err
}
