package main

import (
	"flag"
	"os"

	"github.com/yigit/sporthub/internal/pkg/logger"
	"github.com/yigit/sporthub/internal/server"
)

// @title SportHub API
// @version 1.0
// @description Sports community backend: accounts, posts, articles, events and profiles.

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token from /login, sent as "Bearer <token>"

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
