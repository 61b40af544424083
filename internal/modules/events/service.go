package events

import (
	"context"
	"fmt"

	"github.com/aristath/catalyst-trader/internal/domain"
	"github.com/rs/zerolog"
)

// validEventTypes guards writes; reads accept anything already stored.
var validEventTypes = map[domain.EventType]bool{
	domain.EventEarnings:      true,
	domain.EventFDAApproval:   true,
	domain.EventMerger:        true,
	domain.EventProductLaunch: true,
	domain.EventRegulatory:    true,
	domain.EventEconomicData:  true,
	domain.EventOther:         true,
}

var validSeverities = map[domain.ImpactSeverity]bool{
	domain.SeverityLow:      true,
	domain.SeverityMedium:   true,
	domain.SeverityHigh:     true,
	domain.SeverityCritical: true,
}

// Service provides the event-calendar API consumed by the pricing module.
type Service struct {
	repo *Repository
	log  zerolog.Logger
}

// NewService creates a new event calendar service
func NewService(repo *Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("module", "events").Logger(),
	}
}

// UpcomingEvents returns future events for a ticker within daysAhead days.
// Implements pricing.EventSource.
func (s *Service) UpcomingEvents(ctx context.Context, ticker string, daysAhead int) ([]domain.MarketEvent, error) {
	return s.repo.Upcoming(ctx, ticker, daysAhead)
}

// HistoricalEvents returns realized events for a ticker within daysBack
// days. Implements pricing.EventSource.
func (s *Service) HistoricalEvents(ctx context.Context, ticker string, daysBack int) ([]domain.MarketEvent, error) {
	return s.repo.Historical(ctx, ticker, daysBack)
}

// Record validates and stores a new calendar entry
func (s *Service) Record(ctx context.Context, event domain.MarketEvent) (string, error) {
	if event.Ticker == "" {
		return "", fmt.Errorf("ticker is required")
	}
	if event.EventDate.IsZero() {
		return "", fmt.Errorf("event date is required")
	}
	if !validEventTypes[event.EventType] {
		return "", fmt.Errorf("unknown event type: %s", event.EventType)
	}
	if !validSeverities[event.ImpactSeverity] {
		return "", fmt.Errorf("unknown impact severity: %s", event.ImpactSeverity)
	}

	eventUUID, err := s.repo.Record(ctx, event)
	if err != nil {
		return "", err
	}

	s.log.Info().
		Str("uuid", eventUUID).
		Str("ticker", event.Ticker).
		Str("type", string(event.EventType)).
		Time("date", event.EventDate).
		Msg("Recorded market event")

	return eventUUID, nil
}

// RecordOutcome stores the realized surprise factor for a resolved event
func (s *Service) RecordOutcome(ctx context.Context, eventUUID string, surprise float64) error {
	return s.repo.SetSurpriseFactor(ctx, eventUUID, surprise)
}
