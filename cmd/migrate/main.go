package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/pageza/ecocart/backend/config"
	"github.com/pageza/ecocart/backend/internal/database"
	"github.com/pageza/ecocart/backend/internal/logging"
)

func main() {
	check := flag.Bool("check", false, "Report missing tables without migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if *check {
		missing := 0
		for _, m := range database.Models() {
			if !db.Migrator().HasTable(m) {
				fmt.Printf("Missing table for %T\n", m)
				missing++
			}
		}
		if missing > 0 {
			log.Fatalf("%d tables missing", missing)
		}
		fmt.Println("Schema is complete.")
		return
	}

	if err := database.RunMigrations(db, logger); err != nil {
		logger.Fatalf("failed to apply migrations: %v", err)
	}
	fmt.Println("All migrations applied successfully.")
}
