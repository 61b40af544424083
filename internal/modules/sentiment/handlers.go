package sentiment

import (
	"encoding/json"
	"net/http"

	"github.com/aristath/catalyst-trader/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for the sentiment API
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new sentiment handlers instance
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("handler", "sentiment").Logger(),
	}
}

// HandleGet returns the sentiment score for a ticker
// GET /api/sentiment/{ticker}
func (h *Handlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	score, err := h.service.Score(r.Context(), ticker)
	if err != nil {
		h.log.Error().Err(err).Str("ticker", ticker).Msg("Failed to get sentiment score")
		http.Error(w, "Failed to get sentiment score", http.StatusInternalServerError)
		return
	}
	if score == nil {
		http.Error(w, "No sentiment for ticker", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(score)
}

// HandleUpdate stores the sentiment score for a ticker
// PUT /api/sentiment/{ticker}
func (h *Handlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	var payload struct {
		OverallScore float64 `json:"overall_sentiment_score"`
		Momentum     float64 `json:"sentiment_momentum"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := h.service.Update(r.Context(), domain.SentimentScore{
		Ticker:       ticker,
		OverallScore: payload.OverallScore,
		Momentum:     payload.Momentum,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
