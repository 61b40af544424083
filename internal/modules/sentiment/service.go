package sentiment

import (
	"context"
	"fmt"

	"github.com/aristath/catalyst-trader/internal/domain"
	"github.com/rs/zerolog"
)

// Service provides the sentiment API consumed by the pricing module.
type Service struct {
	repo *Repository
	log  zerolog.Logger
}

// NewService creates a new sentiment service
func NewService(repo *Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("module", "sentiment").Logger(),
	}
}

// Score returns the stored sentiment for a ticker, nil when none exists.
// Implements pricing.SentimentSource.
func (s *Service) Score(ctx context.Context, ticker string) (*domain.SentimentScore, error) {
	return s.repo.Get(ctx, ticker)
}

// Update validates and stores a sentiment score
func (s *Service) Update(ctx context.Context, score domain.SentimentScore) error {
	if score.Ticker == "" {
		return fmt.Errorf("ticker is required")
	}
	if score.OverallScore < -100 || score.OverallScore > 100 {
		return fmt.Errorf("overall sentiment score must be in [-100, 100], got %v", score.OverallScore)
	}

	if err := s.repo.Upsert(ctx, score); err != nil {
		return err
	}

	s.log.Debug().
		Str("ticker", score.Ticker).
		Float64("score", score.OverallScore).
		Float64("momentum", score.Momentum).
		Msg("Updated sentiment score")

	return nil
}
