// main.go
package main

import (
	"context"
	"log"
	"time"

	"trek-booking/cmd"
	"trek-booking/internal/data/migrations"
	"trek-booking/internal/data/repository"
	"trek-booking/internal/wire"
	"trek-booking/pkg/database"
	"trek-booking/pkg/mailer"
	"trek-booking/pkg/storage"
	"trek-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Apply pending migrations before opening the pool
	migrateCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := migrations.Run(migrateCtx, database.DSN(config.Database)); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Migrations applied")

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Pick the mailer: debug runs log-only so reset links land in the logs
	var mail mailer.Mailer
	if config.App.Debug || config.Email.Host == "" {
		mail = mailer.NewLog(logger)
	} else {
		mail = mailer.NewSMTP(config.Email)
	}

	// Upload storage (local disk or S3)
	store, err := storage.New(config.Storage, config.App.BaseURL)
	if err != nil {
		logger.Fatal("Failed to init storage", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, mail, store, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
