package pricing

import "github.com/aristath/catalyst-trader/internal/domain"

// ScenarioRange derives a symmetric band around the fully-adjusted price.
// Severity widens the band (a critical catalyst can move the option 25%
// either way); strong sentiment widens it further because crowded trades
// overshoot in both directions.
//
// The pessimistic bound is NOT floor-clamped at zero: for deep OTM
// near-expiry options with a wide factor it can go negative. Callers must
// treat a negative pessimistic value as a degenerate edge case.
func ScenarioRange(adjustedPrice float64, event *domain.MarketEvent, sentiment *domain.SentimentScore) PriceRange {
	factor := BaseRangeFactor

	if event != nil {
		switch event.ImpactSeverity {
		case domain.SeverityCritical:
			factor = CriticalRangeFactor
		case domain.SeverityHigh:
			factor = HighRangeFactor
		case domain.SeverityMedium:
			factor = MediumRangeFactor
		}
	}

	if sentiment != nil {
		factor += abs(sentiment.OverallScore) / SentimentRangeDivisor
	}

	return PriceRange{
		Optimistic:  adjustedPrice * (1 + factor),
		Realistic:   adjustedPrice,
		Pessimistic: adjustedPrice * (1 - factor),
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
