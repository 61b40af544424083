package pricing

import (
	"testing"
	"time"

	"github.com/aristath/catalyst-trader/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var selectorNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func eventOn(ticker string, date time.Time, eventType domain.EventType) domain.MarketEvent {
	return domain.MarketEvent{
		Ticker:         ticker,
		EventType:      eventType,
		EventDate:      date,
		ImpactSeverity: domain.SeverityMedium,
		IsFutureEvent:  true,
	}
}

func TestSelectRelevantEvent_PicksNearest(t *testing.T) {
	events := []domain.MarketEvent{
		eventOn("AAPL", selectorNow.AddDate(0, 0, 20), domain.EventProductLaunch),
		eventOn("AAPL", selectorNow.AddDate(0, 0, 5), domain.EventEarnings),
		eventOn("AAPL", selectorNow.AddDate(0, 0, 12), domain.EventRegulatory),
	}

	selected := SelectRelevantEvent(events, 0.25, selectorNow)

	require.NotNil(t, selected)
	assert.Equal(t, domain.EventEarnings, selected.EventType)
}

func TestSelectRelevantEvent_IgnoresEventsAfterExpiry(t *testing.T) {
	// ~18 days to expiry; the 30-day event cannot affect the contract
	events := []domain.MarketEvent{
		eventOn("TSLA", selectorNow.AddDate(0, 0, 30), domain.EventEarnings),
		eventOn("TSLA", selectorNow.AddDate(0, 0, 10), domain.EventMerger),
	}

	selected := SelectRelevantEvent(events, 0.05, selectorNow)

	require.NotNil(t, selected)
	assert.Equal(t, domain.EventMerger, selected.EventType)
}

func TestSelectRelevantEvent_NoQualifyingEvent(t *testing.T) {
	events := []domain.MarketEvent{
		eventOn("NVDA", selectorNow.AddDate(0, 0, 60), domain.EventEarnings),
	}

	assert.Nil(t, SelectRelevantEvent(events, 0.1, selectorNow))
	assert.Nil(t, SelectRelevantEvent(nil, 0.1, selectorNow))
}

func TestSelectRelevantEvent_TieKeepsInputOrder(t *testing.T) {
	sameDay := selectorNow.AddDate(0, 0, 7)
	events := []domain.MarketEvent{
		eventOn("MRNA", sameDay, domain.EventFDAApproval),
		eventOn("MRNA", sameDay, domain.EventEarnings),
	}

	selected := SelectRelevantEvent(events, 0.25, selectorNow)

	require.NotNil(t, selected)
	assert.Equal(t, domain.EventFDAApproval, selected.EventType)
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{name: "exactly 5 days", date: selectorNow.AddDate(0, 0, 5), want: 5},
		{name: "partial day rounds up", date: selectorNow.Add(36 * time.Hour), want: 2},
		{name: "later today", date: selectorNow.Add(6 * time.Hour), want: 1},
		{name: "same instant", date: selectorNow, want: 0},
		{name: "yesterday is negative", date: selectorNow.Add(-30 * time.Hour), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(tt.date, selectorNow))
		})
	}
}
