package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/catalyst-trader/internal/config"
	"github.com/aristath/catalyst-trader/internal/database"
	"github.com/aristath/catalyst-trader/internal/modules/events"
	"github.com/aristath/catalyst-trader/internal/modules/pricing"
	"github.com/aristath/catalyst-trader/internal/modules/sentiment"
	"github.com/aristath/catalyst-trader/internal/scheduler"
	"github.com/aristath/catalyst-trader/internal/server"
	"github.com/aristath/catalyst-trader/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet, fall back to a default one
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting Catalyst Trader")

	// market.db holds the event calendar and sentiment scores
	marketDB, err := database.New(database.Config{
		Path:    cfg.DataDir + "/market.db",
		Profile: database.ProfileStandard,
		Name:    "market",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize market database")
	}
	defer marketDB.Close()

	if err := events.InitSchema(marketDB.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize events schema")
	}
	if err := sentiment.InitSchema(marketDB.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize sentiment schema")
	}

	// Repositories and services
	eventRepo := events.NewRepository(marketDB.Conn(), log)
	eventService := events.NewService(eventRepo, log)

	sentimentRepo := sentiment.NewRepository(marketDB.Conn(), log)
	sentimentService := sentiment.NewService(sentimentRepo, log)

	pricingService := pricing.NewService(eventService, sentimentService, log)

	// Background jobs
	sched := scheduler.New(log)
	maintenance := scheduler.NewCalendarMaintenanceJob(eventRepo, sentimentRepo, log)
	if err := sched.AddJob("@hourly", maintenance); err != nil {
		log.Fatal().Err(err).Msg("Failed to register calendar maintenance job")
	}
	sched.Start()
	defer sched.Stop()

	// HTTP server
	srv := server.New(server.Config{
		Log:               log,
		MarketDB:          marketDB,
		Port:              cfg.Port,
		DevMode:           cfg.DevMode,
		Scheduler:         sched,
		PricingHandlers:   pricing.NewHandlers(pricingService, cfg.RiskFreeRate, log),
		EventHandlers:     events.NewHandlers(eventService, cfg.EventLookaheadDays, log),
		SentimentHandlers: sentiment.NewHandlers(sentimentService, log),
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
