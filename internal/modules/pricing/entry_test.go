package pricing

import (
	"testing"

	"github.com/aristath/catalyst-trader/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRecommendEntryPrice_NoCatalyst(t *testing.T) {
	tests := []struct {
		name        string
		event       *domain.MarketEvent
		daysToEvent int
	}{
		{name: "no event", event: nil, daysToEvent: NoEventDaysSentinel},
		{name: "event beyond window", event: severityEvent(domain.SeverityHigh), daysToEvent: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendEntryPrice(8.40, 9.10, tt.event, tt.daysToEvent, nil)
			assert.InDelta(t, 8.40*0.95, got, 1e-12)
		})
	}
}

func TestRecommendEntryPrice_DiscountFactors(t *testing.T) {
	base, adjusted := 10.0, 14.0 // premium = 4.0
	event := severityEvent(domain.SeverityHigh)

	tests := []struct {
		name      string
		sentiment *domain.SentimentScore
		days      int
		want      float64
	}{
		{
			name: "neutral sentiment pays 70% of premium",
			days: 10,
			want: 10.0 + 4.0*0.70,
		},
		{
			name:      "bullish sentiment pays 85%",
			sentiment: &domain.SentimentScore{OverallScore: 45},
			days:      10,
			want:      10.0 + 4.0*0.85,
		},
		{
			name:      "bearish sentiment pays 60%",
			sentiment: &domain.SentimentScore{OverallScore: -45},
			days:      10,
			want:      10.0 + 4.0*0.60,
		},
		{
			name:      "sentiment inside the bounds stays neutral",
			sentiment: &domain.SentimentScore{OverallScore: 30},
			days:      10,
			want:      10.0 + 4.0*0.70,
		},
		{
			name: "imminent event trims the discount by 10%",
			days: 3,
			want: 10.0 + 4.0*0.70*0.90,
		},
		{
			name:      "imminent and bullish stack",
			sentiment: &domain.SentimentScore{OverallScore: 60},
			days:      2,
			want:      10.0 + 4.0*0.85*0.90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendEntryPrice(base, adjusted, event, tt.days, tt.sentiment)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}
