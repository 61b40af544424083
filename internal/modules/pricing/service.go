package pricing

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/aristath/catalyst-trader/internal/domain"
	"github.com/aristath/catalyst-trader/pkg/formulas"
	"github.com/rs/zerolog"
)

// EventSource supplies the event calendar for a ticker.
type EventSource interface {
	UpcomingEvents(ctx context.Context, ticker string, daysAhead int) ([]domain.MarketEvent, error)
	HistoricalEvents(ctx context.Context, ticker string, daysBack int) ([]domain.MarketEvent, error)
}

// SentimentSource supplies the aggregated sentiment for a ticker.
// A nil score with nil error means no sentiment is available.
type SentimentSource interface {
	Score(ctx context.Context, ticker string) (*domain.SentimentScore, error)
}

// OptionPricer is the external base pricer. It must be deterministic and
// side-effect free.
type OptionPricer func(spot, strike, timeToExpiry, riskFreeRate, volatility float64, isCall bool) float64

// impactLookbackDays bounds the historical-event search for the
// retrospective IV-crush query.
const impactLookbackDays = 30

// Service orchestrates event-adjusted pricing: it gathers events and
// sentiment, adjusts IV, re-prices, and assembles the recommendation.
type Service struct {
	events    EventSource
	sentiment SentimentSource
	pricer    OptionPricer
	now       func() time.Time
	log       zerolog.Logger
}

// NewService creates a pricing service backed by the Black-Scholes formula.
func NewService(events EventSource, sentiment SentimentSource, log zerolog.Logger) *Service {
	return NewServiceWithPricer(events, sentiment, formulas.BlackScholesPrice, log)
}

// NewServiceWithPricer creates a pricing service with a custom base pricer.
// Used by tests and by callers that price off a different model.
func NewServiceWithPricer(events EventSource, sentiment SentimentSource, pricer OptionPricer, log zerolog.Logger) *Service {
	return &Service{
		events:    events,
		sentiment: sentiment,
		pricer:    pricer,
		now:       time.Now,
		log:       log.With().Str("module", "pricing").Logger(),
	}
}

// SetClock overrides the time source. Used by tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// PriceWithEvents prices an option and adjusts for the nearest relevant
// event and current sentiment.
//
// Missing auxiliary context never fails the call: an unavailable event
// calendar degrades to the no-event path and missing sentiment to a
// neutral multiplier. Only invalid inputs return an error.
func (s *Service) PriceWithEvents(ctx context.Context, req PricingRequest) (*EventAdjustedPricing, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pricing request: %w", err)
	}

	now := s.now()
	events, sentiment := s.gatherContext(ctx, req.Ticker, req.TimeToExpiryYears)

	event := SelectRelevantEvent(events, req.TimeToExpiryYears, now)
	daysToEvent := NoEventDaysSentinel
	if event != nil {
		daysToEvent = DaysUntil(event.EventDate, now)
	}

	adjustment := AdjustVolatility(req.BaseVolatility, event, daysToEvent, sentiment)

	basePrice := s.price(req, adjustment.BaseIV)
	eventAdjustedPrice := s.price(req, adjustment.EventAdjustedIV)
	sentimentAdjustedPrice := s.price(req, adjustment.FinalIV)

	eventPremium := eventAdjustedPrice - basePrice
	sentimentImpact := sentimentAdjustedPrice - eventAdjustedPrice

	premiumPct := 0.0
	if basePrice != 0 {
		premiumPct = eventPremium / basePrice * 100
	}

	result := &EventAdjustedPricing{
		Ticker:                 req.Ticker,
		BasePrice:              basePrice,
		EventAdjustedPrice:     eventAdjustedPrice,
		SentimentAdjustedPrice: sentimentAdjustedPrice,
		RecommendedEntryPrice:  RecommendEntryPrice(basePrice, eventAdjustedPrice, event, daysToEvent, sentiment),
		AdjustedVolatility:     adjustment.FinalIV,
		BaseVolatility:         req.BaseVolatility,
		EventPremium:           eventPremium,
		SentimentImpact:        sentimentImpact,
		DaysToEvent:            daysToEvent,
		Confidence:             ScoreConfidence(event, daysToEvent, sentiment),
		Recommendation: Narrate(NarrativeContext{
			Event:       event,
			Sentiment:   sentiment,
			DaysToEvent: daysToEvent,
			BasePrice:   basePrice,
			PremiumPct:  premiumPct,
		}),
		PriceRange: ScenarioRange(sentimentAdjustedPrice, event, sentiment),
	}

	s.log.Debug().
		Str("ticker", req.Ticker).
		Int("days_to_event", daysToEvent).
		Float64("base_price", basePrice).
		Float64("final_iv", adjustment.FinalIV).
		Str("confidence", string(result.Confidence)).
		Msg("Priced option with event adjustment")

	return result, nil
}

// EventImpactOnOption quantifies the IV-crush effect of the most recent
// realized event on an option. Returns nil when the ticker has no
// historical events in the lookback window.
func (s *Service) EventImpactOnOption(ctx context.Context, ticker string, strike float64, expiration time.Time, isCall bool, spot, currentIV float64) (*EventImpact, error) {
	if spot <= 0 || strike <= 0 || currentIV <= 0 {
		return nil, fmt.Errorf("spot, strike and current IV must be positive")
	}

	now := s.now()
	timeToExpiry := expiration.Sub(now).Hours() / 24 / 365
	if timeToExpiry <= 0 {
		return nil, fmt.Errorf("option expired at %s", expiration.Format("2006-01-02"))
	}

	events, err := s.events.HistoricalEvents(ctx, ticker, impactLookbackDays)
	if err != nil {
		return nil, fmt.Errorf("failed to load historical events for %s: %w", ticker, err)
	}
	if len(events) == 0 {
		return nil, nil
	}

	// Most recent realized event drives the crush
	event := &events[0]
	for i := range events {
		if events[i].EventDate.After(event.EventDate) {
			event = &events[i]
		}
	}

	postEventIV := CrushVolatility(currentIV, event)

	preEventPrice := s.pricer(spot, strike, timeToExpiry, 0, currentIV, isCall)
	postEventPrice := s.pricer(spot, strike, timeToExpiry, 0, postEventIV, isCall)

	return &EventImpact{
		PreEventPrice:  preEventPrice,
		PostEventPrice: postEventPrice,
		IVCrushImpact:  postEventIV - currentIV,
		PriceChange:    postEventPrice - preEventPrice,
	}, nil
}

// gatherContext fetches events and sentiment concurrently. The two reads
// are independent; failures degrade to empty data rather than erroring.
func (s *Service) gatherContext(ctx context.Context, ticker string, timeToExpiryYears float64) ([]domain.MarketEvent, *domain.SentimentScore) {
	daysAhead := int(math.Ceil(timeToExpiryYears * 365))

	var (
		wg        sync.WaitGroup
		events    []domain.MarketEvent
		sentiment *domain.SentimentScore
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		result, err := s.events.UpcomingEvents(ctx, ticker, daysAhead)
		if err != nil {
			s.log.Warn().Err(err).Str("ticker", ticker).Msg("Event lookup failed, pricing without events")
			return
		}
		events = result
	}()

	go func() {
		defer wg.Done()
		result, err := s.sentiment.Score(ctx, ticker)
		if err != nil {
			s.log.Warn().Err(err).Str("ticker", ticker).Msg("Sentiment lookup failed, using neutral sentiment")
			return
		}
		sentiment = result
	}()

	wg.Wait()
	return events, sentiment
}

func (s *Service) price(req PricingRequest, volatility float64) float64 {
	return s.pricer(req.SpotPrice, req.StrikePrice, req.TimeToExpiryYears, req.RiskFreeRate, volatility, req.IsCall)
}
