package pricing

import (
	"math"

	"github.com/aristath/catalyst-trader/internal/domain"
)

// ScoreConfidence rates how well-supported the adjusted pricing is by
// accumulating points from event severity, sentiment strength, and timing,
// then mapping the total to a discrete level.
//
// No event at all short-circuits to low: with nothing on the calendar
// there is no thesis to be confident about.
func ScoreConfidence(event *domain.MarketEvent, daysToEvent int, sentiment *domain.SentimentScore) ConfidenceLevel {
	if event == nil {
		return ConfidenceLow
	}

	score := 0

	switch event.ImpactSeverity {
	case domain.SeverityHigh, domain.SeverityCritical:
		score += SeverityMajorPoints
	case domain.SeverityMedium:
		score += SeverityMediumPoints
	}

	if sentiment != nil {
		strength := math.Abs(sentiment.OverallScore)
		switch {
		case strength > SentimentStrongBound:
			score += SentimentStrongPoints
		case strength > SentimentModestBound:
			score += SentimentModestPoints
		default:
			score += SentimentWeakPoints
		}
	}

	switch {
	case daysToEvent <= TimingNearDays:
		score += TimingNearPoints
	case daysToEvent <= TimingMidDays:
		score += TimingMidPoints
	case daysToEvent <= TimingFarDays:
		score += TimingFarPoints
	}

	switch {
	case score >= HighConfidenceFloor:
		return ConfidenceHigh
	case score >= MediumConfidenceFloor:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
