package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/diewo77/seedmart/internal/config"
	"github.com/diewo77/seedmart/internal/console"
	"github.com/diewo77/seedmart/internal/db"
	"github.com/joho/godotenv"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	seedOnlyFlag    = flag.Bool("seed-only", false, "Run DB seed and exit")
)

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()

	dbConn, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *migrateOnlyFlag {
		if err := db.Migrate(dbConn, cfg.Database, cfg.App.Migrations); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations completed successfully")
		return
	}

	if *seedOnlyFlag {
		if err := db.Seed(dbConn, cfg.Seed, cfg.App.BcryptCost); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Println("Seeding completed successfully")
		return
	}

	// MIGRATIONS selects the versioned SQL files over AutoMigrate
	if err := db.Migrate(dbConn, cfg.Database, cfg.App.Migrations); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed")

	if cfg.App.Seed {
		if err := db.Seed(dbConn, cfg.Seed, cfg.App.BcryptCost); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	app := NewApp(dbConn, cfg)
	c := app.Console(os.Stdin, os.Stdout)
	c.ReadPassword = console.TerminalPassword(os.Stdin)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	select {
	case err = <-done:
	case <-ctx.Done():
		log.Println("Shutdown signal received")
	}
	if sqlDB, cerr := dbConn.DB(); cerr == nil {
		_ = sqlDB.Close()
	}
	if err != nil {
		log.Fatalf("Console error: %v", err)
	}
}
