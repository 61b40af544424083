package events

import (
	"time"

	"github.com/aristath/catalyst-trader/internal/domain"
)

// eventPayload is the JSON shape accepted when recording a calendar entry.
// Dates may be YYYY-MM-DD or full RFC3339.
type eventPayload struct {
	Ticker         string   `json:"ticker"`
	EventType      string   `json:"event_type"`
	EventDate      string   `json:"event_date"`
	ImpactSeverity string   `json:"impact_severity"`
	SurpriseFactor *float64 `json:"surprise_factor,omitempty"`
	Description    string   `json:"description,omitempty"`
}

func (p eventPayload) toDomain() domain.MarketEvent {
	return domain.MarketEvent{
		Ticker:         p.Ticker,
		EventType:      domain.EventType(p.EventType),
		EventDate:      parseEventDate(p.EventDate),
		ImpactSeverity: domain.ImpactSeverity(p.ImpactSeverity),
		SurpriseFactor: p.SurpriseFactor,
		Description:    p.Description,
	}
}

// parseEventDate returns the zero time for unparseable input; the service
// rejects zero dates on write.
func parseEventDate(value string) time.Time {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed
	}
	return time.Time{}
}
