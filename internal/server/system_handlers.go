package server

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/aristath/catalyst-trader/internal/database"
	"github.com/aristath/catalyst-trader/internal/scheduler"
)

// SystemHandlers provides system monitoring endpoints
type SystemHandlers struct {
	log       zerolog.Logger
	marketDB  *database.DB
	scheduler *scheduler.Scheduler
}

// NewSystemHandlers creates system monitoring handlers
func NewSystemHandlers(log zerolog.Logger, marketDB *database.DB, sched *scheduler.Scheduler) *SystemHandlers {
	return &SystemHandlers{
		log:       log.With().Str("handler", "system").Logger(),
		marketDB:  marketDB,
		scheduler: sched,
	}
}

// SystemStatusResponse is the payload for GET /api/system/status
type SystemStatusResponse struct {
	Status          string  `json:"status"`
	CPUPercent      float64 `json:"cpu_percent"`
	MemoryPercent   float64 `json:"memory_percent"`
	UpcomingEvents  int     `json:"upcoming_events"`
	TrackedTickers  int     `json:"tracked_tickers"`
	ScheduledJobs   int     `json:"scheduled_jobs"`
	LastEventUpdate string  `json:"last_event_update,omitempty"`
}

// HandleSystemStatus returns process and data health metrics
// GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	cpuPercent, memPercent := h.getSystemStats()

	var upcomingEvents int
	err := h.marketDB.Conn().QueryRow(`
		SELECT COUNT(*) FROM market_events WHERE is_future_event = 1
	`).Scan(&upcomingEvents)
	if err != nil && err != sql.ErrNoRows {
		h.log.Error().Err(err).Msg("Failed to query upcoming events")
	}

	var trackedTickers int
	err = h.marketDB.Conn().QueryRow(`
		SELECT COUNT(*) FROM sentiment_scores
	`).Scan(&trackedTickers)
	if err != nil && err != sql.ErrNoRows {
		h.log.Error().Err(err).Msg("Failed to query sentiment scores")
	}

	var lastUpdate sql.NullString
	err = h.marketDB.Conn().QueryRow(`
		SELECT MAX(created_at) FROM market_events
	`).Scan(&lastUpdate)
	if err != nil && err != sql.ErrNoRows {
		h.log.Error().Err(err).Msg("Failed to query last event update")
	}

	lastEventUpdate := ""
	if lastUpdate.Valid {
		if t, err := time.Parse(time.RFC3339, lastUpdate.String); err == nil {
			lastEventUpdate = t.Format("2006-01-02 15:04")
		}
	}

	jobCount := 0
	if h.scheduler != nil {
		jobCount = h.scheduler.JobCount()
	}

	h.writeJSON(w, SystemStatusResponse{
		Status:          "ok",
		CPUPercent:      cpuPercent,
		MemoryPercent:   memPercent,
		UpcomingEvents:  upcomingEvents,
		TrackedTickers:  trackedTickers,
		ScheduledJobs:   jobCount,
		LastEventUpdate: lastEventUpdate,
	})
}

// DatabaseStatsResponse is the payload for GET /api/system/database
type DatabaseStatsResponse struct {
	Name       string  `json:"name"`
	Path       string  `json:"path"`
	SizeMB     float64 `json:"size_mb"`
	Healthy    bool    `json:"healthy"`
	EventRows  int     `json:"event_rows"`
	ScoreRows  int     `json:"score_rows"`
	CheckError string  `json:"check_error,omitempty"`
}

// HandleDatabaseStats reports database size and integrity
// GET /api/system/database
func (h *SystemHandlers) HandleDatabaseStats(w http.ResponseWriter, r *http.Request) {
	resp := DatabaseStatsResponse{
		Name: h.marketDB.Name(),
		Path: h.marketDB.Path(),
	}

	if info, err := os.Stat(h.marketDB.Path()); err == nil {
		resp.SizeMB = float64(info.Size()) / 1024 / 1024
	}

	if err := h.marketDB.HealthCheck(r.Context()); err != nil {
		h.log.Error().Err(err).Msg("Database health check failed")
		resp.CheckError = err.Error()
	} else {
		resp.Healthy = true
	}

	if err := h.marketDB.Conn().QueryRow(`SELECT COUNT(*) FROM market_events`).Scan(&resp.EventRows); err != nil {
		h.log.Error().Err(err).Msg("Failed to count market events")
	}
	if err := h.marketDB.Conn().QueryRow(`SELECT COUNT(*) FROM sentiment_scores`).Scan(&resp.ScoreRows); err != nil {
		h.log.Error().Err(err).Msg("Failed to count sentiment scores")
	}

	h.writeJSON(w, resp)
}

// getSystemStats calculates CPU and RAM usage percentages
// Uses a short interval (100ms) so the API call does not block
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}

func (h *SystemHandlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
