package main

import (
	"log"

	"theatre-api/cmd"
	"theatre-api/internal/data/repository"
	"theatre-api/internal/wire"
	"theatre-api/pkg/database"
	"theatre-api/pkg/mailer"
	"theatre-api/pkg/utils"

	"github.com/redis/go-redis/v9"
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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Outgoing verification mail, logs instead of sending when SMTP is absent
	mail := mailer.NewFromConfig(config.Email, logger)

	// Redis only backs rate limiting, the API runs without it
	var rdb *redis.Client
	if config.RateLimit.Enabled && config.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, mail, rdb, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
