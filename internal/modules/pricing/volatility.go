package pricing

import (
	"math"

	"github.com/aristath/catalyst-trader/internal/domain"
)

// AdjustVolatility scales a base implied volatility for an upcoming event
// and the current sentiment backdrop.
//
// The event path only activates when an event exists and lies within
// EventWindowDays; beyond that window the anticipated move is not yet
// priced in. Sentiment expands IV regardless of events. The final IV is
// clamped to MaxIVMultiplier times the base so a stacked critical event
// plus extreme sentiment cannot blow the price up without bound.
func AdjustVolatility(baseIV float64, event *domain.MarketEvent, daysToEvent int, sentiment *domain.SentimentScore) VolatilityAdjustment {
	eventMultiplier := 1.0
	if event != nil && daysToEvent <= EventWindowDays {
		eventMultiplier = eventTypeMultiplier(event.EventType) *
			timeMultiplier(daysToEvent) *
			severityMultiplier(event.ImpactSeverity)
	}

	sentimentMultiplier := 1.0
	if sentiment != nil {
		sentimentMultiplier = 1.0 +
			(math.Abs(sentiment.OverallScore)/SentimentScoreDivisor)*SentimentScoreWeight +
			(math.Abs(sentiment.Momentum)/SentimentMomentumScale)*SentimentMomentumWeight
	}

	eventAdjustedIV := baseIV * eventMultiplier
	finalIV := math.Min(eventAdjustedIV*sentimentMultiplier, baseIV*MaxIVMultiplier)

	return VolatilityAdjustment{
		BaseIV:              baseIV,
		EventAdjustedIV:     eventAdjustedIV,
		PreEventMultiplier:  eventMultiplier,
		SentimentMultiplier: sentimentMultiplier,
		FinalIV:             finalIV,
	}
}

// CrushVolatility models the IV collapse after an event resolves. A larger
// surprise vs consensus deepens the crush slightly: the market reprices
// faster when the outcome was unexpected.
func CrushVolatility(preEventIV float64, event *domain.MarketEvent) float64 {
	surprise := 0.0
	if event != nil && event.SurpriseFactor != nil {
		surprise = math.Abs(*event.SurpriseFactor)
	}

	crush := IVCrushBase + (surprise/100.0)*IVCrushSurpriseWeight
	return preEventIV * (1.0 - crush)
}

func eventTypeMultiplier(eventType domain.EventType) float64 {
	if m, ok := eventTypeMultipliers[eventType]; ok {
		return m
	}
	return unknownEventTypeMultiplier
}

// timeMultiplier finds the smallest bucket covering daysToEvent in the
// ascending table. Days beyond the last bucket fall back to the 30-day
// multiplier; unreachable while callers gate at EventWindowDays, but the
// table must behave if that gate is ever relaxed.
func timeMultiplier(daysToEvent int) float64 {
	for _, bucket := range preEventTimeMultipliers {
		if daysToEvent <= bucket.MaxDays {
			return bucket.Multiplier
		}
	}
	return preEventTimeMultipliers[len(preEventTimeMultipliers)-1].Multiplier
}

func severityMultiplier(severity domain.ImpactSeverity) float64 {
	if m, ok := severityMultipliers[severity]; ok {
		return m
	}
	return 1.0
}
