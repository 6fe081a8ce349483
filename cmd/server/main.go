package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yukikurage/task-assignment-api/internal/config"
	"github.com/yukikurage/task-assignment-api/internal/database"
	"github.com/yukikurage/task-assignment-api/internal/logger"
	"github.com/yukikurage/task-assignment-api/internal/repository"
	"github.com/yukikurage/task-assignment-api/internal/server"
	"github.com/yukikurage/task-assignment-api/internal/services"
)

func main() {
	// Default logger until the configured one is ready
	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log, err := logger.New(cfg)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to init logger")
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()
	if cfg.SeedUsers {
		if _, err := database.SeedUsers(ctx, repository.NewUserRepository(db), log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed users")
		}
	}

	taskService := services.NewTaskService(repository.NewTaskRepository(db), log)
	router := server.NewRouter(cfg.HTTP, taskService, log)

	runErr := server.Run(ctx, cfg.HTTP, router, log)

	if err := database.Close(db); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("server stopped")
		os.Exit(1)
	}
}
