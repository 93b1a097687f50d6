package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/pageza/ecocart/backend/config"
	"github.com/pageza/ecocart/backend/internal/database"
	"github.com/pageza/ecocart/backend/internal/logging"
	"github.com/pageza/ecocart/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if config.IsProduction() {
		log.Fatal("Refusing to create test users in production")
	}

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

	auth, err := service.NewAuthService(db, cfg.JWTSecret, logger.WithField("component", "auth"))
	if err != nil {
		logger.Fatalf("Failed to initialise auth: %v", err)
	}

	password := os.Getenv("TEST_USER_PASSWORD")
	if password == "" {
		password = "testpassword123"
	}

	testUsers := []struct {
		username string
		email    string
	}{
		{username: "johndoe", email: "john.doe@example.com"},
		{username: "janesmith", email: "jane.smith@example.com"},
		{username: "bobwilson", email: "bob.wilson@example.com"},
	}

	ctx := context.Background()
	for _, u := range testUsers {
		user, err := auth.Register(ctx, u.username, u.email, password)
		if errors.Is(err, service.ErrConflict) {
			fmt.Printf("Skipping %s: %s\n", u.email, service.Message(err))
			continue
		}
		if err != nil {
			logger.Fatalf("Failed to create user %s: %v", u.email, err)
		}
		fmt.Printf("Created user %s (id %d)\n", user.Email, user.ID)
	}

	fmt.Printf("Test users share the password %q\n", password)
}
