package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/pageza/ecocart/backend/config"
	"github.com/pageza/ecocart/backend/internal/database"
	"github.com/pageza/ecocart/backend/internal/logging"
	"github.com/pageza/ecocart/backend/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	source := flag.String("source", cfg.SeedSource, "Seed file path or s3://bucket/key; empty uses the built-in sample data")
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db, logger); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	fixture, err := seed.Load(ctx, *source, seed.S3Fetcher(cfg.AWSRegion))
	if err != nil {
		logger.Fatalf("Failed to load seed data: %v", err)
	}

	res, err := seed.Apply(ctx, db, fixture, logger.WithField("component", "seed"))
	if err != nil {
		logger.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Printf("Products: %d added, %d already present\n", res.ProductsAdded, res.ProductsSkipped)
	fmt.Printf("Recipes: %d added, %d already present\n", res.RecipesAdded, res.RecipesSkipped)
}
