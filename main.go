// main.go
package main

import (
	"log"

	"tours-admin/cmd"
	"tours-admin/internal/wire"
	"tours-admin/pkg/upstream"
	"tours-admin/pkg/utils"

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

	// Build the upstream client every proxy route forwards to
	client, err := upstream.NewClient(config.Upstream)
	if err != nil {
		logger.Fatal("Failed to init upstream client", zap.Error(err))
	}
	defer client.Close()

	logger.Info("Upstream client ready",
		zap.String("base_url", config.Upstream.BaseURL),
		zap.Int("timeout_seconds", config.Upstream.TimeoutSeconds),
	)

	// Wire all dependencies
	app := wire.Wiring(client, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
