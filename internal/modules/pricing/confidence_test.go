package pricing

import (
	"testing"

	"github.com/aristath/catalyst-trader/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestScoreConfidence_NoEventShortCircuits(t *testing.T) {
	strong := &domain.SentimentScore{OverallScore: 90}
	assert.Equal(t, ConfidenceLow, ScoreConfidence(nil, 2, strong))
}

func TestScoreConfidence_Tiers(t *testing.T) {
	tests := []struct {
		name      string
		severity  domain.ImpactSeverity
		days      int
		sentiment *domain.SentimentScore
		want      ConfidenceLevel
	}{
		{
			// 30 + 30 + 25 = 85
			name:      "critical event soon with strong sentiment",
			severity:  domain.SeverityCritical,
			days:      5,
			sentiment: &domain.SentimentScore{OverallScore: -70},
			want:      ConfidenceHigh,
		},
		{
			// 30 + 20 + 25 = 75
			name:      "high severity soon with modest sentiment",
			severity:  domain.SeverityHigh,
			days:      7,
			sentiment: &domain.SentimentScore{OverallScore: 30},
			want:      ConfidenceHigh,
		},
		{
			// 20 + 10 + 15 = 45
			name:      "medium severity mid window weak sentiment",
			severity:  domain.SeverityMedium,
			days:      12,
			sentiment: &domain.SentimentScore{OverallScore: 10},
			want:      ConfidenceMedium,
		},
		{
			// 30 + 0 + 10 = 40 (timing tier at 21 days)
			name:     "high severity three weeks out no sentiment",
			severity: domain.SeverityHigh,
			days:     21,
			want:     ConfidenceMedium,
		},
		{
			// 0 + 0 + 25 = 25
			name:     "low severity soon no sentiment",
			severity: domain.SeverityLow,
			days:     4,
			want:     ConfidenceLow,
		},
		{
			// 20 + 0 + 0 = 20 (beyond all timing tiers)
			name:     "medium severity far out",
			severity: domain.SeverityMedium,
			days:     28,
			want:     ConfidenceLow,
		},
		{
			// boundary: |score| = 50 lands in the modest tier, 30+20+25 = 75
			name:      "sentiment strength boundary is exclusive",
			severity:  domain.SeverityCritical,
			days:      6,
			sentiment: &domain.SentimentScore{OverallScore: 50},
			want:      ConfidenceHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := severityEvent(tt.severity)
			assert.Equal(t, tt.want, ScoreConfidence(event, tt.days, tt.sentiment))
		})
	}
}
