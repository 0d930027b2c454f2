package main

import (
	"context"
	"os"
	"time"

	"equiprent/internal/config"
	"equiprent/internal/database"
	"equiprent/internal/logger"
	"equiprent/internal/repository"
	"equiprent/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}
	logger.Initialize(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg.DatabaseURL, cfg.LogLevel)
	if err != nil {
		logger.Error("DB connection failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		logger.Error("AutoMigrate failed", "error", err)
		os.Exit(1)
	}

	store := repository.NewStore(db)
	opts := seed.Options{
		AdminUsername: os.Getenv("SEED_ADMIN_USERNAME"),
		AdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
	}
	if err := seed.Run(context.Background(), store, time.Now(), opts); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Seeding completed")
}
