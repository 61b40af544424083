package pricing

import "github.com/aristath/catalyst-trader/internal/domain"

// Volatility adjustment constants - all multipliers and thresholds used to
// scale implied volatility around a known catalyst.

const (
	// Events further out than this never inflate IV
	EventWindowDays = 30

	// Hard ceiling on the adjusted IV relative to base IV
	MaxIVMultiplier = 2.5

	// Sentinel for "no relevant event before expiration"
	NoEventDaysSentinel = 999

	// Sentiment-driven IV expansion: score contributes up to 15%,
	// momentum up to 10%
	SentimentScoreWeight    = 0.15
	SentimentScoreDivisor   = 100.0
	SentimentMomentumWeight = 0.10
	SentimentMomentumScale  = 50.0

	// Post-event IV crush: IV loses 40% plus up to 10% more for a
	// large surprise vs consensus
	IVCrushBase           = 0.40
	IVCrushSurpriseWeight = 0.10
)

// eventTypeMultipliers scales IV expansion by the kind of catalyst.
// Binary outcomes (FDA decisions, mergers) carry more premium than
// broad macro prints.
var eventTypeMultipliers = map[domain.EventType]float64{
	domain.EventEarnings:      1.0,
	domain.EventFDAApproval:   1.3,
	domain.EventMerger:        1.2,
	domain.EventProductLaunch: 0.8,
	domain.EventRegulatory:    1.1,
	domain.EventEconomicData:  0.7,
	domain.EventOther:         0.5,
}

// unknownEventTypeMultiplier applies to event types not in the table.
const unknownEventTypeMultiplier = 0.5

// severityMultipliers scales IV expansion by expected impact.
// Low severity adds nothing.
var severityMultipliers = map[domain.ImpactSeverity]float64{
	domain.SeverityCritical: 1.3,
	domain.SeverityHigh:     1.2,
	domain.SeverityMedium:   1.1,
}

// timeBucket maps a days-to-event ceiling to a pre-event IV multiplier.
type timeBucket struct {
	MaxDays    int
	Multiplier float64
}

// preEventTimeMultipliers is an ascending lookup table: the applicable
// bucket is the smallest MaxDays >= days-to-event. IV ramps steeply in
// the final week before a catalyst.
//
// The table must stay sorted by MaxDays; timeMultiplier relies on it.
var preEventTimeMultipliers = []timeBucket{
	{MaxDays: 1, Multiplier: 1.5},
	{MaxDays: 2, Multiplier: 1.4},
	{MaxDays: 3, Multiplier: 1.35},
	{MaxDays: 4, Multiplier: 1.3},
	{MaxDays: 5, Multiplier: 1.25},
	{MaxDays: 6, Multiplier: 1.2},
	{MaxDays: 7, Multiplier: 1.15},
	{MaxDays: 14, Multiplier: 1.1},
	{MaxDays: 21, Multiplier: 1.05},
	{MaxDays: 30, Multiplier: 1.02},
}

// Scenario range constants (see scenario.go)
const (
	BaseRangeFactor       = 0.10
	CriticalRangeFactor   = 0.25
	HighRangeFactor       = 0.20
	MediumRangeFactor     = 0.15
	SentimentRangeDivisor = 200.0
)

// Entry price constants (see entry.go)
const (
	NoCatalystDiscount       = 0.95
	BasePremiumDiscount      = 0.70
	BullishPremiumDiscount   = 0.85
	BearishPremiumDiscount   = 0.60
	ImminentDiscountModifier = 0.90
	BullishSentimentBound    = 30.0
	BearishSentimentBound    = -30.0
	ImminentEventDays        = 3
)

// Confidence scoring constants (see confidence.go)
const (
	SeverityMajorPoints   = 30 // high or critical
	SeverityMediumPoints  = 20
	SentimentStrongPoints = 30 // |score| > 50
	SentimentModestPoints = 20 // |score| > 25
	SentimentWeakPoints   = 10 // any sentiment at all
	SentimentStrongBound  = 50.0
	SentimentModestBound  = 25.0
	TimingNearPoints      = 25 // <= 7 days
	TimingMidPoints       = 15 // <= 14 days
	TimingFarPoints       = 10 // <= 21 days
	TimingNearDays        = 7
	TimingMidDays         = 14
	TimingFarDays         = 21
	HighConfidenceFloor   = 70
	MediumConfidenceFloor = 40
)
