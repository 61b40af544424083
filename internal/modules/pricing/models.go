package pricing

import "fmt"

// PricingRequest is the immutable input to the event-adjusted pricer.
type PricingRequest struct {
	Ticker            string  `json:"ticker"`
	SpotPrice         float64 `json:"spot_price"`
	StrikePrice       float64 `json:"strike_price"`
	TimeToExpiryYears float64 `json:"time_to_expiry_years"`
	RiskFreeRate      float64 `json:"risk_free_rate"`
	BaseVolatility    float64 `json:"base_volatility"`
	IsCall            bool    `json:"is_call"`
}

// Validate rejects requests the pricing math cannot handle. Runs before
// any collaborator call.
func (r PricingRequest) Validate() error {
	if r.Ticker == "" {
		return fmt.Errorf("ticker is required")
	}
	if r.SpotPrice <= 0 {
		return fmt.Errorf("spot price must be positive, got %v", r.SpotPrice)
	}
	if r.StrikePrice <= 0 {
		return fmt.Errorf("strike price must be positive, got %v", r.StrikePrice)
	}
	if r.TimeToExpiryYears <= 0 {
		return fmt.Errorf("time to expiry must be positive, got %v", r.TimeToExpiryYears)
	}
	if r.BaseVolatility <= 0 {
		return fmt.Errorf("base volatility must be positive, got %v", r.BaseVolatility)
	}
	return nil
}

// VolatilityAdjustment breaks an IV adjustment into its factors so the
// result is auditable.
type VolatilityAdjustment struct {
	BaseIV              float64 `json:"base_iv"`
	EventAdjustedIV     float64 `json:"event_adjusted_iv"`
	PreEventMultiplier  float64 `json:"pre_event_multiplier"`
	SentimentMultiplier float64 `json:"sentiment_multiplier"`
	FinalIV             float64 `json:"final_iv"`
}

// ConfidenceLevel rates how well-supported a recommendation is.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// PriceRange is the scenario band around the fully-adjusted price.
type PriceRange struct {
	Optimistic  float64 `json:"optimistic"`
	Realistic   float64 `json:"realistic"`
	Pessimistic float64 `json:"pessimistic"`
}

// EventAdjustedPricing is the result of one pricing call. DaysToEvent is
// 999 when no relevant event falls before expiration.
type EventAdjustedPricing struct {
	Ticker                 string          `json:"ticker"`
	BasePrice              float64         `json:"base_price"`
	EventAdjustedPrice     float64         `json:"event_adjusted_price"`
	SentimentAdjustedPrice float64         `json:"sentiment_adjusted_price"`
	RecommendedEntryPrice  float64         `json:"recommended_entry_price"`
	AdjustedVolatility     float64         `json:"adjusted_volatility"`
	BaseVolatility         float64         `json:"base_volatility"`
	EventPremium           float64         `json:"event_premium"`
	SentimentImpact        float64         `json:"sentiment_impact"`
	DaysToEvent            int             `json:"days_to_event"`
	Confidence             ConfidenceLevel `json:"confidence"`
	Recommendation         string          `json:"recommendation"`
	PriceRange             PriceRange      `json:"price_range"`
}

// EventImpact quantifies what a realized event did to an option via the
// post-event IV crush. Returned by the retrospective query only.
type EventImpact struct {
	PreEventPrice  float64 `json:"pre_event_price"`
	PostEventPrice float64 `json:"post_event_price"`
	IVCrushImpact  float64 `json:"iv_crush_impact"`
	PriceChange    float64 `json:"price_change"`
}
