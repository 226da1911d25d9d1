package main

import (
	"os"

	"github.com/rajni12071985-debug/pragati/internal/pkg/logger"
	"github.com/rajni12071985-debug/pragati/internal/server"
)

// @title Pragati Campus API
// @version 1.0
// @description REST API for the campus team formation and activities portal

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin JWT for moderation endpoints

func main() {
	srv, err := server.NewServer()
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
