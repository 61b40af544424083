package pricing

import (
	"math"
	"time"

	"github.com/aristath/catalyst-trader/internal/domain"
)

// SelectRelevantEvent picks the single event that should drive pricing:
// the nearest event dated on or before the option's expiration. Events
// after expiry cannot affect the contract and are ignored.
//
// Ties on days-to-event keep the earliest entry in the input slice, so
// caller ordering is preserved. Returns nil when nothing qualifies.
func SelectRelevantEvent(events []domain.MarketEvent, timeToExpiryYears float64, now time.Time) *domain.MarketEvent {
	expiry := now.Add(yearsToDuration(timeToExpiryYears))

	var selected *domain.MarketEvent
	selectedDays := 0

	for i := range events {
		event := &events[i]
		if event.EventDate.After(expiry) {
			continue
		}

		days := DaysUntil(event.EventDate, now)
		if selected == nil || days < selectedDays {
			selected = event
			selectedDays = days
		}
	}

	return selected
}

// DaysUntil returns the number of whole days from now until date, rounded
// up. Same-day or past-boundary dates can yield zero or negative values.
func DaysUntil(date time.Time, now time.Time) int {
	return int(math.Ceil(date.Sub(now).Hours() / 24))
}

func yearsToDuration(years float64) time.Duration {
	return time.Duration(years * 365 * 24 * float64(time.Hour))
}
