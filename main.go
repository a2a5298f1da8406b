// Package main is the entry point for the Pressroom API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"pressroom/src/app/server"
	"pressroom/src/core/ports"
	"pressroom/src/infra/config"
	"pressroom/src/infra/db"
	"pressroom/src/infra/logger"
	"pressroom/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"db_disabled", cfg.Database.Disabled,
	)

	ctx := context.Background()

	var stores ports.Stores
	if cfg.Database.Disabled {
		stores = repo.NewMemoryStores()
	} else {
		pg, err := db.New(ctx, cfg.Database, log)
		if err != nil {
			return err
		}
		defer pg.Close()

		if err := pg.EnsureSchema(ctx); err != nil {
			return err
		}
		stores = repo.NewPostgresStores(pg, log)
	}

	if cfg.Database.Seed {
		if err := repo.Seed(ctx, stores); err != nil {
			return err
		}
		log.Info("demo data seeded")
	}

	// Run blocks until shutdown signal is received
	return server.New(cfg, log, stores).Run()
}
