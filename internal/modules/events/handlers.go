package events

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for the event calendar API
type Handlers struct {
	service          *Service
	defaultLookahead int
	log              zerolog.Logger
}

// NewHandlers creates a new event handlers instance. defaultLookahead bounds
// upcoming-event queries when the caller does not pass days_ahead.
func NewHandlers(service *Service, defaultLookahead int, log zerolog.Logger) *Handlers {
	return &Handlers{
		service:          service,
		defaultLookahead: defaultLookahead,
		log:              log.With().Str("handler", "events").Logger(),
	}
}

// HandleUpcoming returns upcoming events for a ticker
// GET /api/events/{ticker}?days_ahead=90
func (h *Handlers) HandleUpcoming(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	daysAhead := h.defaultLookahead
	if param := r.URL.Query().Get("days_ahead"); param != "" {
		if parsed, err := strconv.Atoi(param); err == nil && parsed > 0 {
			daysAhead = parsed
		}
	}

	events, err := h.service.UpcomingEvents(r.Context(), ticker, daysAhead)
	if err != nil {
		h.log.Error().Err(err).Str("ticker", ticker).Msg("Failed to get upcoming events")
		http.Error(w, "Failed to get upcoming events", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ticker": ticker,
		"events": events,
		"count":  len(events),
	})
}

// HandleHistorical returns realized events for a ticker
// GET /api/events/{ticker}/history?days_back=30
func (h *Handlers) HandleHistorical(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	daysBack := 30
	if param := r.URL.Query().Get("days_back"); param != "" {
		if parsed, err := strconv.Atoi(param); err == nil && parsed > 0 {
			daysBack = parsed
		}
	}

	events, err := h.service.HistoricalEvents(r.Context(), ticker, daysBack)
	if err != nil {
		h.log.Error().Err(err).Str("ticker", ticker).Msg("Failed to get historical events")
		http.Error(w, "Failed to get historical events", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ticker": ticker,
		"events": events,
		"count":  len(events),
	})
}

// HandleRecord stores a new calendar entry
// POST /api/events
func (h *Handlers) HandleRecord(w http.ResponseWriter, r *http.Request) {
	var event eventPayload
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	eventUUID, err := h.service.Record(r.Context(), event.toDomain())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"uuid": eventUUID})
}

// HandleRecordOutcome stores the realized surprise for a resolved event
// PUT /api/events/{uuid}/outcome
func (h *Handlers) HandleRecordOutcome(w http.ResponseWriter, r *http.Request) {
	eventUUID := chi.URLParam(r, "uuid")

	var payload struct {
		SurpriseFactor float64 `json:"surprise_factor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.RecordOutcome(r.Context(), eventUUID, payload.SurpriseFactor); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
