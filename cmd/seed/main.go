// Command seed imports reference symbol tables from CSV files into the
// database, outside the server's scheduled refresh.
//
// Usage:
//
//	seed -dir ./seed_data            # import every market
//	seed -dir ./seed_data -market us # import a single market
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/odemir/networth-tracker-backend/internal/config"
	"github.com/odemir/networth-tracker-backend/internal/database"
	"github.com/odemir/networth-tracker-backend/internal/logging"
	"github.com/odemir/networth-tracker-backend/internal/model"
	"github.com/odemir/networth-tracker-backend/internal/repository"
	"github.com/odemir/networth-tracker-backend/internal/seed"
)

func main() {
	var (
		dir    = flag.String("dir", "", "directory containing symbol CSV files (defaults to SEED_DIR)")
		market = flag.String("market", "", "single market to import (bist, us); empty imports all")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *dir == "" {
		*dir = cfg.Seed.Dir
	}
	if *dir == "" {
		log.Fatal("No seed directory: pass -dir or set SEED_DIR")
	}

	logger := logging.New(cfg.LogLevel)

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	importer := seed.NewImporter(repository.NewSymbolRepository(db), *dir, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if *market != "" {
		m := model.Market(*market)
		if !model.ValidMarkets[m] {
			logger.Fatal().Str("market", *market).Msg("Unknown market")
		}
		count, err := importer.ImportMarket(ctx, m)
		if err != nil {
			logger.Fatal().Err(err).Str("market", *market).Msg("Import failed")
		}
		logger.Info().Str("market", *market).Int("symbols", count).Msg("Import complete")
		return
	}

	if err := importer.ImportAll(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Import failed")
	}
	logger.Info().Msg("Import complete")
}
