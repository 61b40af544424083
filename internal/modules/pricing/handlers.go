package pricing

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for the pricing API
type Handlers struct {
	service             *Service
	defaultRiskFreeRate float64
	log                 zerolog.Logger
}

// NewHandlers creates a new pricing handlers instance. defaultRiskFreeRate is
// applied when a request omits its own rate.
func NewHandlers(service *Service, defaultRiskFreeRate float64, log zerolog.Logger) *Handlers {
	return &Handlers{
		service:             service,
		defaultRiskFreeRate: defaultRiskFreeRate,
		log:                 log.With().Str("handler", "pricing").Logger(),
	}
}

// HandlePriceWithEvents prices an option with event and sentiment adjustment
// POST /api/pricing/event-adjusted
func (h *Handlers) HandlePriceWithEvents(w http.ResponseWriter, r *http.Request) {
	var req PricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.RiskFreeRate == 0 {
		req.RiskFreeRate = h.defaultRiskFreeRate
	}

	result, err := h.service.PriceWithEvents(r.Context(), req)
	if err != nil {
		h.log.Warn().Err(err).Str("ticker", req.Ticker).Msg("Pricing request rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleEventImpact reports the IV-crush impact of the latest realized event
// GET /api/pricing/event-impact?ticker=AAPL&strike=190&expiration=2026-01-16&is_call=true&spot=185.2&current_iv=0.42
func (h *Handlers) HandleEventImpact(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	ticker := q.Get("ticker")
	if ticker == "" {
		http.Error(w, "ticker is required", http.StatusBadRequest)
		return
	}

	strike, err := strconv.ParseFloat(q.Get("strike"), 64)
	if err != nil {
		http.Error(w, "strike must be a number", http.StatusBadRequest)
		return
	}

	expiration, err := time.Parse("2006-01-02", q.Get("expiration"))
	if err != nil {
		http.Error(w, "expiration must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	spot, err := strconv.ParseFloat(q.Get("spot"), 64)
	if err != nil {
		http.Error(w, "spot must be a number", http.StatusBadRequest)
		return
	}

	currentIV, err := strconv.ParseFloat(q.Get("current_iv"), 64)
	if err != nil {
		http.Error(w, "current_iv must be a number", http.StatusBadRequest)
		return
	}

	isCall := q.Get("is_call") == "true"

	impact, err := h.service.EventImpactOnOption(r.Context(), ticker, strike, expiration, isCall, spot, currentIV)
	if err != nil {
		h.log.Error().Err(err).Str("ticker", ticker).Msg("Failed to compute event impact")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if impact == nil {
		http.Error(w, "No historical events for ticker", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(impact)
}
