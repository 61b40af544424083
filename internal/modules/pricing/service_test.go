package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aristath/catalyst-trader/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

type stubEventSource struct {
	upcoming   []domain.MarketEvent
	historical []domain.MarketEvent
	err        error
	calls      int
}

func (s *stubEventSource) UpcomingEvents(_ context.Context, _ string, _ int) ([]domain.MarketEvent, error) {
	s.calls++
	return s.upcoming, s.err
}

func (s *stubEventSource) HistoricalEvents(_ context.Context, _ string, _ int) ([]domain.MarketEvent, error) {
	s.calls++
	return s.historical, s.err
}

type stubSentimentSource struct {
	score *domain.SentimentScore
	err   error
	calls int
}

func (s *stubSentimentSource) Score(_ context.Context, _ string) (*domain.SentimentScore, error) {
	s.calls++
	return s.score, s.err
}

func newTestService(events *stubEventSource, sentiment *stubSentimentSource) *Service {
	svc := NewService(events, sentiment, zerolog.Nop())
	svc.SetClock(func() time.Time { return serviceNow })
	return svc
}

func validRequest() PricingRequest {
	return PricingRequest{
		Ticker:            "AAPL",
		SpotPrice:         185.0,
		StrikePrice:       190.0,
		TimeToExpiryYears: 0.25,
		RiskFreeRate:      0.04,
		BaseVolatility:    0.30,
		IsCall:            true,
	}
}

func TestPriceWithEvents_NoEventNoSentiment(t *testing.T) {
	svc := newTestService(&stubEventSource{}, &stubSentimentSource{})

	result, err := svc.PriceWithEvents(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, NoEventDaysSentinel, result.DaysToEvent)
	assert.Equal(t, ConfidenceLow, result.Confidence)
	assert.Contains(t, result.Recommendation, "No significant events")

	// Flat 5% discount heuristic, exact
	assert.Equal(t, result.BasePrice*0.95, result.RecommendedEntryPrice)

	// No adjustment: all three prices collapse to the base price
	assert.Equal(t, result.BasePrice, result.EventAdjustedPrice)
	assert.Equal(t, result.BasePrice, result.SentimentAdjustedPrice)
	assert.Zero(t, result.EventPremium)
	assert.Zero(t, result.SentimentImpact)
	assert.Equal(t, result.BaseVolatility, result.AdjustedVolatility)
}

func TestPriceWithEvents_UpcomingCriticalEvent(t *testing.T) {
	events := &stubEventSource{upcoming: []domain.MarketEvent{{
		Ticker:         "AAPL",
		EventType:      domain.EventEarnings,
		EventDate:      serviceNow.AddDate(0, 0, 5),
		ImpactSeverity: domain.SeverityCritical,
		IsFutureEvent:  true,
	}}}
	sentiment := &stubSentimentSource{score: &domain.SentimentScore{
		Ticker:       "AAPL",
		OverallScore: 60,
		Momentum:     20,
	}}

	svc := newTestService(events, sentiment)

	result, err := svc.PriceWithEvents(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 5, result.DaysToEvent)
	assert.Greater(t, result.EventAdjustedPrice, result.BasePrice)
	assert.Greater(t, result.SentimentAdjustedPrice, result.EventAdjustedPrice)
	assert.Greater(t, result.EventPremium, 0.0)
	assert.Greater(t, result.SentimentImpact, 0.0)
	assert.LessOrEqual(t, result.AdjustedVolatility, result.BaseVolatility*MaxIVMultiplier)

	// critical(30) + strong sentiment(30) + <=7 days(25) = 85
	assert.Equal(t, ConfidenceHigh, result.Confidence)
	assert.Contains(t, result.Recommendation, "Earnings in 5 days")
}

func TestPriceWithEvents_InvalidInputFailsBeforeCollaborators(t *testing.T) {
	events := &stubEventSource{}
	sentiment := &stubSentimentSource{}
	svc := newTestService(events, sentiment)

	tests := []struct {
		name   string
		mutate func(*PricingRequest)
	}{
		{name: "zero spot", mutate: func(r *PricingRequest) { r.SpotPrice = 0 }},
		{name: "negative strike", mutate: func(r *PricingRequest) { r.StrikePrice = -5 }},
		{name: "zero expiry", mutate: func(r *PricingRequest) { r.TimeToExpiryYears = 0 }},
		{name: "zero volatility", mutate: func(r *PricingRequest) { r.BaseVolatility = 0 }},
		{name: "missing ticker", mutate: func(r *PricingRequest) { r.Ticker = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.PriceWithEvents(context.Background(), req)
			assert.Error(t, err)
		})
	}

	assert.Zero(t, events.calls, "collaborators must not be called for invalid input")
	assert.Zero(t, sentiment.calls)
}

func TestPriceWithEvents_CollaboratorFailuresDegrade(t *testing.T) {
	events := &stubEventSource{err: errors.New("calendar store down")}
	sentiment := &stubSentimentSource{err: errors.New("sentiment store down")}
	svc := newTestService(events, sentiment)

	result, err := svc.PriceWithEvents(context.Background(), validRequest())
	require.NoError(t, err, "pricing must not fail because auxiliary context is missing")

	assert.Equal(t, NoEventDaysSentinel, result.DaysToEvent)
	assert.Equal(t, result.BasePrice*0.95, result.RecommendedEntryPrice)
}

func TestPriceWithEvents_Deterministic(t *testing.T) {
	events := &stubEventSource{upcoming: []domain.MarketEvent{{
		EventType:      domain.EventFDAApproval,
		EventDate:      serviceNow.AddDate(0, 0, 10),
		ImpactSeverity: domain.SeverityHigh,
		IsFutureEvent:  true,
	}}}
	sentiment := &stubSentimentSource{score: &domain.SentimentScore{OverallScore: -40, Momentum: 15}}
	svc := newTestService(events, sentiment)

	first, err := svc.PriceWithEvents(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := svc.PriceWithEvents(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEventImpactOnOption(t *testing.T) {
	surprise := 12.0
	events := &stubEventSource{historical: []domain.MarketEvent{
		{
			EventType:      domain.EventEarnings,
			EventDate:      serviceNow.AddDate(0, 0, -10),
			ImpactSeverity: domain.SeverityHigh,
		},
		{
			EventType:      domain.EventEarnings,
			EventDate:      serviceNow.AddDate(0, 0, -2),
			ImpactSeverity: domain.SeverityCritical,
			SurpriseFactor: &surprise,
		},
	}}
	svc := newTestService(events, &stubSentimentSource{})

	expiration := serviceNow.AddDate(0, 1, 0)
	impact, err := svc.EventImpactOnOption(context.Background(), "AAPL", 190, expiration, true, 185, 0.50)
	require.NoError(t, err)
	require.NotNil(t, impact)

	// crush = 0.4 + 12/100*0.1 = 0.412 from the most recent event
	assert.InDelta(t, 0.50*(1-0.412)-0.50, impact.IVCrushImpact, 1e-9)
	assert.Less(t, impact.PostEventPrice, impact.PreEventPrice)
	assert.InDelta(t, impact.PostEventPrice-impact.PreEventPrice, impact.PriceChange, 1e-12)
}

func TestEventImpactOnOption_NoHistory(t *testing.T) {
	svc := newTestService(&stubEventSource{}, &stubSentimentSource{})

	impact, err := svc.EventImpactOnOption(context.Background(), "AAPL", 190, serviceNow.AddDate(0, 1, 0), true, 185, 0.50)
	require.NoError(t, err)
	assert.Nil(t, impact)
}

func TestEventImpactOnOption_ExpiredOption(t *testing.T) {
	svc := newTestService(&stubEventSource{}, &stubSentimentSource{})

	_, err := svc.EventImpactOnOption(context.Background(), "AAPL", 190, serviceNow.AddDate(0, 0, -1), true, 185, 0.50)
	assert.Error(t, err)
}
