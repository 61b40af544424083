package events

import "database/sql"

// MarketEventsSchema defines the event calendar table in market.db
const MarketEventsSchema = `
CREATE TABLE IF NOT EXISTS market_events (
    uuid TEXT PRIMARY KEY,
    ticker TEXT NOT NULL,
    event_type TEXT NOT NULL,
    event_date TEXT NOT NULL,
    impact_severity TEXT NOT NULL,
    surprise_factor REAL,
    description TEXT,
    is_future_event INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_market_events_ticker ON market_events(ticker);
CREATE INDEX IF NOT EXISTS idx_market_events_date ON market_events(event_date);
`

// InitSchema ensures the market_events table exists
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(MarketEventsSchema)
	return err
}
