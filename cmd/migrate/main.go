package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/gravadigital/marquee-api/internal/config"
	"github.com/gravadigital/marquee-api/internal/logger"
	"github.com/gravadigital/marquee-api/internal/storage/migrations"
	"github.com/gravadigital/marquee-api/internal/storage/postgres"
)

func main() {
	cfg := config.Load()
	logger.Initialize("info")

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	db, err := postgres.Connect(cfg)
	if err != nil {
		color.Red("failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer postgres.Close(db)

	switch command {
	case "up":
		if err := migrations.RunMigrations(db); err != nil {
			color.Red("migration failed: %v", err)
			os.Exit(1)
		}
		color.Green("migrations applied")
	case "down":
		if err := migrations.RollbackMigration(db); err != nil {
			color.Red("rollback failed: %v", err)
			os.Exit(1)
		}
		color.Green("last migration rolled back")
	case "status":
		applied, err := migrations.AppliedMigrations(db)
		if err != nil {
			color.Red("failed to read migration status: %v", err)
			os.Exit(1)
		}

		appliedIDs := make(map[string]bool, len(applied))
		for _, m := range applied {
			appliedIDs[m.ID] = true
		}

		for _, m := range migrations.GetMigrations() {
			if appliedIDs[m.ID] {
				color.Green("applied  %s %s", m.ID, m.Name)
			} else {
				color.Yellow("pending  %s %s", m.ID, m.Name)
			}
		}
	default:
		fmt.Fprintf(os.Stderr, "usage: migrate [up|down|status]\n")
		os.Exit(2)
	}
}
