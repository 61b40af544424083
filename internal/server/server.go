package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/catalyst-trader/internal/database"
	"github.com/aristath/catalyst-trader/internal/modules/events"
	"github.com/aristath/catalyst-trader/internal/modules/pricing"
	"github.com/aristath/catalyst-trader/internal/modules/sentiment"
	"github.com/aristath/catalyst-trader/internal/scheduler"
)

// Config holds server configuration
type Config struct {
	Log               zerolog.Logger
	MarketDB          *database.DB
	Port              int
	DevMode           bool
	Scheduler         *scheduler.Scheduler
	PricingHandlers   *pricing.Handlers
	EventHandlers     *events.Handlers
	SentimentHandlers *sentiment.Handlers
}

// Server represents the HTTP server
type Server struct {
	router            *chi.Mux
	server            *http.Server
	log               zerolog.Logger
	marketDB          *database.DB
	systemHandlers    *SystemHandlers
	pricingHandlers   *pricing.Handlers
	eventHandlers     *events.Handlers
	sentimentHandlers *sentiment.Handlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:            chi.NewRouter(),
		log:               cfg.Log.With().Str("component", "server").Logger(),
		marketDB:          cfg.MarketDB,
		systemHandlers:    NewSystemHandlers(cfg.Log, cfg.MarketDB, cfg.Scheduler),
		pricingHandlers:   cfg.PricingHandlers,
		eventHandlers:     cfg.EventHandlers,
		sentimentHandlers: cfg.SentimentHandlers,
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		// System monitoring
		r.Get("/system/status", s.systemHandlers.HandleSystemStatus)
		r.Get("/system/database", s.systemHandlers.HandleDatabaseStats)

		// Pricing module
		r.Post("/pricing/event-adjusted", s.pricingHandlers.HandlePriceWithEvents)
		r.Get("/pricing/event-impact", s.pricingHandlers.HandleEventImpact)

		// Events module
		r.Post("/events", s.eventHandlers.HandleRecord)
		r.Get("/events/{ticker}", s.eventHandlers.HandleUpcoming)
		r.Get("/events/{ticker}/history", s.eventHandlers.HandleHistorical)
		r.Put("/events/{uuid}/outcome", s.eventHandlers.HandleRecordOutcome)

		// Sentiment module
		r.Get("/sentiment/{ticker}", s.sentimentHandlers.HandleGet)
		r.Put("/sentiment/{ticker}", s.sentimentHandlers.HandleUpdate)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
