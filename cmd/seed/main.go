// Command seed applies migrations and loads the reference catalog.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/WorldsAreYours/fit-and-easy/internal/config"
	"github.com/WorldsAreYours/fit-and-easy/internal/database"
	"github.com/WorldsAreYours/fit-and-easy/internal/logging"
	"github.com/WorldsAreYours/fit-and-easy/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(logging.LoggerSetupParams{LogToStdout: true, LogLevel: cfg.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.Open(ctx, database.Options{
		User:     cfg.DBUser,
		Password: cfg.DBPass,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		Name:     cfg.DBName,
	})
	if err != nil {
		log.Fatalf("open database: %s", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %s", err)
	}
	res, err := seed.Run(ctx, db)
	if err != nil {
		log.Fatalf("seed: %s", err)
	}
	log.Infof("done: %d muscle groups, %d exercises added, %d already present",
		res.MuscleGroupsInserted, res.ExercisesInserted, res.ExercisesSkipped)
}
