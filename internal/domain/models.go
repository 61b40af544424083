package domain

import "time"

// EventType classifies a scheduled market catalyst.
type EventType string

const (
	EventEarnings      EventType = "earnings"
	EventFDAApproval   EventType = "fda_approval"
	EventMerger        EventType = "merger"
	EventProductLaunch EventType = "product_launch"
	EventRegulatory    EventType = "regulatory"
	EventEconomicData  EventType = "economic_data"
	EventOther         EventType = "other"
)

// ImpactSeverity grades how hard an event is expected to move the underlying.
type ImpactSeverity string

const (
	SeverityLow      ImpactSeverity = "low"
	SeverityMedium   ImpactSeverity = "medium"
	SeverityHigh     ImpactSeverity = "high"
	SeverityCritical ImpactSeverity = "critical"
)

// MarketEvent is a known catalyst for a ticker (earnings, FDA decision,
// merger vote, ...). SurpriseFactor is only populated once the event has
// resolved: it is the signed percent deviation from consensus.
type MarketEvent struct {
	EventDate      time.Time      `json:"event_date"`
	CreatedAt      time.Time      `json:"created_at"`
	UUID           string         `json:"uuid"`
	Ticker         string         `json:"ticker"`
	EventType      EventType      `json:"event_type"`
	Description    string         `json:"description,omitempty"`
	ImpactSeverity ImpactSeverity `json:"impact_severity"`
	SurpriseFactor *float64       `json:"surprise_factor,omitempty"`
	IsFutureEvent  bool           `json:"is_future_event"`
}

// SentimentScore is the aggregated market sentiment for a ticker.
// OverallScore is bounded to [-100, 100]; Momentum is the rate of change
// of the score over a recent window.
type SentimentScore struct {
	UpdatedAt    time.Time `json:"updated_at"`
	Ticker       string    `json:"ticker"`
	OverallScore float64   `json:"overall_sentiment_score"`
	Momentum     float64   `json:"sentiment_momentum"`
}
