package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/odemir/networth-tracker-backend/internal/api"
	"github.com/odemir/networth-tracker-backend/internal/api/response"
	"github.com/odemir/networth-tracker-backend/internal/config"
	"github.com/odemir/networth-tracker-backend/internal/database"
	"github.com/odemir/networth-tracker-backend/internal/logging"
	"github.com/odemir/networth-tracker-backend/internal/repository"
	"github.com/odemir/networth-tracker-backend/internal/scheduler"
	"github.com/odemir/networth-tracker-backend/internal/seed"
	"github.com/odemir/networth-tracker-backend/internal/service"
	"github.com/odemir/networth-tracker-backend/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	response.SetLogger(logger)

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("Connected to database")

	// Create repositories
	assetRepo := repository.NewAssetRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	liabilityRepo := repository.NewLiabilityRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	symbolRepo := repository.NewSymbolRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	assetService := service.NewAssetService(assetRepo)
	transactionService := service.NewTransactionService(db, transactionRepo, assetRepo)
	liabilityService := service.NewLiabilityService(liabilityRepo)
	performanceService := service.NewPerformanceService(snapshotRepo, assetRepo, liabilityRepo)
	symbolService := service.NewSymbolService(symbolRepo)

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Asset:       assetService,
		Transaction: transactionService,
		Liability:   liabilityService,
		Performance: performanceService,
		Symbol:      symbolService,
	}, cfg, logger)

	// Background jobs
	sched := scheduler.New(logger)
	if err := sched.AddJob(cfg.Scheduler.SnapshotSpec, scheduler.NewSnapshotJob(performanceService, logger)); err != nil {
		logger.Fatal().Err(err).Msg("Failed to register snapshot job")
	}
	if cfg.Seed.Dir != "" {
		importer := seed.NewImporter(symbolRepo, cfg.Seed.Dir, logger)
		if err := sched.AddJob(cfg.Scheduler.SeedSpec, scheduler.NewSeedRefreshJob(importer)); err != nil {
			logger.Fatal().Err(err).Msg("Failed to register seed refresh job")
		}
	}
	sched.Start()

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().
			Str("addr", cfg.Server.Addr).
			Str("version", version.Version).
			Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	sched.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
